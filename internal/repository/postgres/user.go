package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, full_name, role, password_hash, approved_on, created_on, updated_on`

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.PasswordHash, &u.ApprovedOn, &u.CreatedOn, &u.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, full_name, role, password_hash, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on, updated_on`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query, u.Email, u.FullName, u.Role, u.PasswordHash, now, now).
		Scan(&u.ID, &u.CreatedOn, &u.UpdatedOn)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q(ctx, r.db).QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context, offset, limit int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) Approve(ctx context.Context, id int32) (*domain.User, error) {
	// Approval is idempotent at the SQL level: an already-approved user
	// keeps the original timestamp.
	query := `UPDATE users SET approved_on = COALESCE(approved_on, $2), updated_on = $2
	          WHERE id = $1 RETURNING ` + userColumns
	return scanUser(q(ctx, r.db).QueryRowContext(ctx, query, id, time.Now()))
}
