package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veritas25/fundbooth/internal/domain"
)

type ProjectRepository interface {
	FindByName(ctx context.Context, projectName string) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	ListSummaries(ctx context.Context) ([]domain.ProjectSummary, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectCols = `id, project_name, password_hash, created_at, updated_at`

func (r *projectRepository) FindByName(ctx context.Context, projectName string) (*domain.Project, error) {
	const q = `SELECT ` + projectCols + ` FROM projects WHERE project_name = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.Project
	err := r.pool.QueryRow(ctx, q, projectName).Scan(
		&p.ID, &p.ProjectName, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &p, err
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `SELECT ` + projectCols + ` FROM projects WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.Project
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.ProjectName, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &p, err
}

func (r *projectRepository) ListSummaries(ctx context.Context) ([]domain.ProjectSummary, error) {
	const q = `SELECT id, project_name, created_at FROM projects ORDER BY project_name`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ProjectSummary
	for rows.Next() {
		var s domain.ProjectSummary
		if err := rows.Scan(&s.ID, &s.ProjectName, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
