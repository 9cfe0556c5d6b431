package postgres

import (
	"context"
	"database/sql"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type workLogRepository struct {
	db *sql.DB
}

func NewWorkLogRepository(db *sql.DB) repository.WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(ctx context.Context, l *domain.WorkLog) error {
	if l.LogDate.IsZero() {
		l.LogDate = time.Now()
	}
	query := `INSERT INTO work_logs (user_id, log_date, notes, target_description, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	return q(ctx, r.db).QueryRowContext(ctx, query, l.UserID, l.LogDate, l.Notes, l.TargetDescription, time.Now()).
		Scan(&l.ID, &l.CreatedOn)
}

func (r *workLogRepository) ListByUser(ctx context.Context, userID int32, offset, limit int32) ([]domain.WorkLog, error) {
	query := `SELECT id, user_id, log_date, notes, target_description, created_on
	          FROM work_logs WHERE user_id = $1 ORDER BY log_date DESC LIMIT $2 OFFSET $3`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.WorkLog
	for rows.Next() {
		var l domain.WorkLog
		var target sql.NullString
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.Notes, &target, &l.CreatedOn); err != nil {
			return nil, err
		}
		l.TargetDescription = target.String
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
