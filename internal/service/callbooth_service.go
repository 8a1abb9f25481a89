package service

import (
	"context"
	"fmt"

	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/repository"
)

type CallBoothService interface {
	List(ctx context.Context, projectID string) ([]domain.CallBoothEntry, error)
	Create(ctx context.Context, projectID string, req *domain.CreateCallBoothRequest) (*domain.CallBoothEntry, error)
	Update(ctx context.Context, projectID, id string, req *domain.UpdateCallBoothRequest) (*domain.CallBoothEntry, error)
	Delete(ctx context.Context, projectID, id string) error
}

type callBoothService struct {
	repo repository.CallBoothRepository
}

func NewCallBoothService(repo repository.CallBoothRepository) CallBoothService {
	return &callBoothService{repo: repo}
}

func (s *callBoothService) List(ctx context.Context, projectID string) ([]domain.CallBoothEntry, error) {
	entries, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list call booth entries: %w", err)
	}
	return entries, nil
}

func (s *callBoothService) Create(ctx context.Context, projectID string, req *domain.CreateCallBoothRequest) (*domain.CallBoothEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	entry, err := s.repo.Create(ctx, projectID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create call booth entry: %w", err)
	}
	return entry, nil
}

func (s *callBoothService) Update(ctx context.Context, projectID, id string, req *domain.UpdateCallBoothRequest) (*domain.CallBoothEntry, error) {
	entry, err := s.repo.Update(ctx, projectID, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update call booth entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrRecordNotFound
	}
	return entry, nil
}

func (s *callBoothService) Delete(ctx context.Context, projectID, id string) error {
	deleted, err := s.repo.Delete(ctx, projectID, id)
	if err != nil {
		return fmt.Errorf("failed to delete call booth entry: %w", err)
	}
	if !deleted {
		return domain.ErrRecordNotFound
	}
	return nil
}
