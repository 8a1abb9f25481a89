package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veritas25/fundbooth/internal/domain"
)

type ExpenseRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
	Create(ctx context.Context, projectID string, req *domain.CreateExpenseRequest) (*domain.Expense, error)
	Update(ctx context.Context, projectID, id string, req *domain.CreateExpenseRequest) (*domain.Expense, error)
	Delete(ctx context.Context, projectID, id string) (bool, error)
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

const expenseCols = `id, project_id, description, amount, date, category, created_at`

func (r *expenseRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	const q = `SELECT ` + expenseCols + ` FROM expenses WHERE project_id = $1 ORDER BY date DESC, created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *expenseRepository) Create(ctx context.Context, projectID string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	const q = `
		INSERT INTO expenses (project_id, description, amount, date, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + expenseCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.Expense
	err := r.pool.QueryRow(ctx, q, projectID,
		req.Description, req.Amount, req.Date, req.Category,
	).Scan(&e.ID, &e.ProjectID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) Update(ctx context.Context, projectID, id string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	const q = `
		UPDATE expenses SET description=$3, amount=$4, date=$5, category=$6
		WHERE id=$1 AND project_id=$2
		RETURNING ` + expenseCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.Expense
	err := r.pool.QueryRow(ctx, q, id, projectID,
		req.Description, req.Amount, req.Date, req.Category,
	).Scan(&e.ID, &e.ProjectID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) Delete(ctx context.Context, projectID, id string) (bool, error) {
	const q = `DELETE FROM expenses WHERE id=$1 AND project_id=$2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, id, projectID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
