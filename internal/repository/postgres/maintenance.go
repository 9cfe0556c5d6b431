package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, tool_id, reported_by_id, assigned_to_id, description, status, resolved_on, created_on, updated_on`

func scanMaintenanceReport(row interface{ Scan(...interface{}) error }) (*domain.MaintenanceReport, error) {
	m := &domain.MaintenanceReport{}
	err := row.Scan(&m.ID, &m.ToolID, &m.ReporterID, &m.AssigneeID, &m.Description, &m.Status, &m.ResolvedOn, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceReport) error {
	query := `INSERT INTO maintenance_reports (tool_id, reported_by_id, description, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on, updated_on`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query, m.ToolID, m.ReporterID, m.Description, m.Status, now, now).
		Scan(&m.ID, &m.CreatedOn, &m.UpdatedOn)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceReport, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_reports WHERE id = $1`
	return scanMaintenanceReport(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceReport) error {
	query := `UPDATE maintenance_reports SET assigned_to_id=$1, status=$2, resolved_on=$3, updated_on=$4 WHERE id=$5`
	res, err := q(ctx, r.db).ExecContext(ctx, query, m.AssigneeID, m.Status, m.ResolvedOn, time.Now(), m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *maintenanceRepository) ListAll(ctx context.Context, offset, limit int32) ([]domain.MaintenanceReport, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_reports ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.MaintenanceReport
	for rows.Next() {
		m, err := scanMaintenanceReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *m)
	}
	return reports, rows.Err()
}
