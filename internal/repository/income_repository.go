package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veritas25/fundbooth/internal/domain"
)

type IncomeRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Income, error)
	Create(ctx context.Context, projectID string, req *domain.CreateIncomeRequest) (*domain.Income, error)
	Update(ctx context.Context, projectID, id string, req *domain.CreateIncomeRequest) (*domain.Income, error)
	Delete(ctx context.Context, projectID, id string) (bool, error)
}

type incomeRepository struct {
	pool *pgxpool.Pool
}

func NewIncomeRepository(pool *pgxpool.Pool) IncomeRepository {
	return &incomeRepository{pool: pool}
}

const incomeCols = `id, project_id, name, phone_number, amount, description, date, called_status, called_by, created_at`

func (r *incomeRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Income, error) {
	const q = `SELECT ` + incomeCols + ` FROM income WHERE project_id = $1 ORDER BY date DESC, created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Income
	for rows.Next() {
		var in domain.Income
		if err := rows.Scan(
			&in.ID, &in.ProjectID, &in.Name, &in.PhoneNumber, &in.Amount,
			&in.Description, &in.Date, &in.CalledStatus, &in.CalledBy, &in.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, in)
	}
	return items, rows.Err()
}

func (r *incomeRepository) Create(ctx context.Context, projectID string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	const q = `
		INSERT INTO income (project_id, name, phone_number, amount, description, date, called_status, called_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + incomeCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var in domain.Income
	err := r.pool.QueryRow(ctx, q, projectID,
		req.Name, req.PhoneNumber, req.Amount, req.Description, req.Date,
		req.CalledStatus, req.CalledBy,
	).Scan(
		&in.ID, &in.ProjectID, &in.Name, &in.PhoneNumber, &in.Amount,
		&in.Description, &in.Date, &in.CalledStatus, &in.CalledBy, &in.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// Update is last-write-wins: there is no version column, and two clients
// editing the same row race without detection.
func (r *incomeRepository) Update(ctx context.Context, projectID, id string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	const q = `
		UPDATE income SET name=$3, phone_number=$4, amount=$5, description=$6, date=$7, called_status=$8, called_by=$9
		WHERE id=$1 AND project_id=$2
		RETURNING ` + incomeCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var in domain.Income
	err := r.pool.QueryRow(ctx, q, id, projectID,
		req.Name, req.PhoneNumber, req.Amount, req.Description, req.Date,
		req.CalledStatus, req.CalledBy,
	).Scan(
		&in.ID, &in.ProjectID, &in.Name, &in.PhoneNumber, &in.Amount,
		&in.Description, &in.Date, &in.CalledStatus, &in.CalledBy, &in.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *incomeRepository) Delete(ctx context.Context, projectID, id string) (bool, error) {
	const q = `DELETE FROM income WHERE id=$1 AND project_id=$2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, id, projectID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
