package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/repository"
	"github.com/veritas25/fundbooth/pkg/logger"
	"github.com/veritas25/fundbooth/pkg/session"
)

type AuthService interface {
	Authenticate(ctx context.Context, req *domain.AuthenticateRequest) (*domain.ProjectSummary, session.Token, error)
	ListProjects(ctx context.Context) ([]domain.ProjectSummary, error)
}

type authService struct {
	projectRepo repository.ProjectRepository
	now         func() time.Time
}

func NewAuthService(projectRepo repository.ProjectRepository) AuthService {
	return &authService{
		projectRepo: projectRepo,
		now:         time.Now,
	}
}

// Authenticate validates a (project name, password) pair and issues a fresh
// client-held session token. Unknown project and wrong password both return
// ErrInvalidCredentials so that project names cannot be enumerated. Nothing
// is persisted server-side.
func (s *authService) Authenticate(ctx context.Context, req *domain.AuthenticateRequest) (*domain.ProjectSummary, session.Token, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, session.Token{}, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.FindByName(ctx, req.ProjectName)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to look up project", "error", err)
		return nil, session.Token{}, domain.ErrInvalidCredentials
	}
	if project == nil {
		return nil, session.Token{}, domain.ErrInvalidCredentials
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, project.PasswordHash)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compare password hash", "error", err)
		return nil, session.Token{}, domain.ErrInvalidCredentials
	}
	if !valid {
		return nil, session.Token{}, domain.ErrInvalidCredentials
	}

	summary := project.Summary()
	token := session.Issue(project.ID, project.ProjectName, s.now())
	return &summary, token, nil
}

func (s *authService) ListProjects(ctx context.Context) ([]domain.ProjectSummary, error) {
	summaries, err := s.projectRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return summaries, nil
}
