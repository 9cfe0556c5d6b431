package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"bengkel-backend/internal/domain"
	"bengkel-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, name, description, category, status, image_url, specifications, price_per_day_cents, created_on, updated_on`

func scanTool(row interface{ Scan(...interface{}) error }) (*domain.Tool, error) {
	t := &domain.Tool{}
	var specs []byte
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.Status, &t.ImageURL, &specs, &t.PricePerDayCents, &t.CreatedOn, &t.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &t.Specifications); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	specs, err := json.Marshal(t.Specifications)
	if err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = domain.ToolStatusAvailable
	}
	query := `INSERT INTO tools (name, description, category, status, image_url, specifications, price_per_day_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_on, updated_on`
	now := time.Now()
	return q(ctx, r.db).QueryRowContext(ctx, query,
		t.Name, t.Description, t.Category, t.Status, t.ImageURL, specs, t.PricePerDayCents, now, now).
		Scan(&t.ID, &t.CreatedOn, &t.UpdatedOn)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return scanTool(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *toolRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1 FOR UPDATE`
	return scanTool(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *toolRepository) List(ctx context.Context, offset, limit int32) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := q(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	specs, err := json.Marshal(t.Specifications)
	if err != nil {
		return err
	}
	query := `UPDATE tools SET name=$1, description=$2, category=$3, status=$4, image_url=$5,
	          specifications=$6, price_per_day_cents=$7, updated_on=$8 WHERE id=$9`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		t.Name, t.Description, t.Category, t.Status, t.ImageURL, specs, t.PricePerDayCents, time.Now(), t.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *toolRepository) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	query := `UPDATE tools SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := q(ctx, r.db).ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *toolRepository) Delete(ctx context.Context, id int32) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow converts zero-affected-row updates into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
