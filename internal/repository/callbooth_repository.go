package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veritas25/fundbooth/internal/domain"
)

type CallBoothRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.CallBoothEntry, error)
	Create(ctx context.Context, projectID string, req *domain.CreateCallBoothRequest) (*domain.CallBoothEntry, error)
	Update(ctx context.Context, projectID, id string, req *domain.UpdateCallBoothRequest) (*domain.CallBoothEntry, error)
	Delete(ctx context.Context, projectID, id string) (bool, error)
}

type callBoothRepository struct {
	pool *pgxpool.Pool
}

func NewCallBoothRepository(pool *pgxpool.Pool) CallBoothRepository {
	return &callBoothRepository{pool: pool}
}

const callBoothCols = `id, project_id, name, phone_number, contacted, answered, created_at, updated_at`

func (r *callBoothRepository) ListByProject(ctx context.Context, projectID string) ([]domain.CallBoothEntry, error) {
	const q = `SELECT ` + callBoothCols + ` FROM call_booth WHERE project_id = $1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CallBoothEntry
	for rows.Next() {
		var e domain.CallBoothEntry
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.Name, &e.PhoneNumber, &e.Contacted, &e.Answered,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *callBoothRepository) Create(ctx context.Context, projectID string, req *domain.CreateCallBoothRequest) (*domain.CallBoothEntry, error) {
	const q = `
		INSERT INTO call_booth (project_id, name, phone_number, contacted, answered)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + callBoothCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.CallBoothEntry
	err := r.pool.QueryRow(ctx, q, projectID,
		req.Name, req.PhoneNumber, req.Contacted, req.Answered,
	).Scan(&e.ID, &e.ProjectID, &e.Name, &e.PhoneNumber, &e.Contacted, &e.Answered, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *callBoothRepository) Update(ctx context.Context, projectID, id string, req *domain.UpdateCallBoothRequest) (*domain.CallBoothEntry, error) {
	const q = `
		UPDATE call_booth SET
			name = COALESCE($3, name),
			phone_number = COALESCE($4, phone_number),
			contacted = COALESCE($5, contacted),
			answered = COALESCE($6, answered),
			updated_at = now()
		WHERE id=$1 AND project_id=$2
		RETURNING ` + callBoothCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.CallBoothEntry
	err := r.pool.QueryRow(ctx, q, id, projectID,
		req.Name, req.PhoneNumber, req.Contacted, req.Answered,
	).Scan(&e.ID, &e.ProjectID, &e.Name, &e.PhoneNumber, &e.Contacted, &e.Answered, &e.CreatedAt, &e.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *callBoothRepository) Delete(ctx context.Context, projectID, id string) (bool, error) {
	const q = `DELETE FROM call_booth WHERE id=$1 AND project_id=$2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, id, projectID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
