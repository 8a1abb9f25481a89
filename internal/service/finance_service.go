package service

import (
	"context"
	"fmt"

	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/repository"
)

// FinanceService exposes per-project income/expense CRUD and the derived
// stats read. Operations filter by the owning project id only; whether the
// caller may touch that project is decided by the session guard above this
// layer, not here.
type FinanceService interface {
	ListIncome(ctx context.Context, projectID string) ([]domain.Income, error)
	CreateIncome(ctx context.Context, projectID string, req *domain.CreateIncomeRequest) (*domain.Income, error)
	UpdateIncome(ctx context.Context, projectID, id string, req *domain.CreateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, projectID, id string) error

	ListExpenses(ctx context.Context, projectID string) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, projectID string, req *domain.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, projectID, id string, req *domain.CreateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, projectID, id string) error

	Stats(ctx context.Context, projectID string) (*domain.ProjectStats, error)
}

type financeService struct {
	incomeRepo  repository.IncomeRepository
	expenseRepo repository.ExpenseRepository
}

func NewFinanceService(incomeRepo repository.IncomeRepository, expenseRepo repository.ExpenseRepository) FinanceService {
	return &financeService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *financeService) ListIncome(ctx context.Context, projectID string) ([]domain.Income, error) {
	items, err := s.incomeRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return items, nil
}

func (s *financeService) CreateIncome(ctx context.Context, projectID string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	income, err := s.incomeRepo.Create(ctx, projectID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	return income, nil
}

func (s *financeService) UpdateIncome(ctx context.Context, projectID, id string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	income, err := s.incomeRepo.Update(ctx, projectID, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}
	if income == nil {
		return nil, domain.ErrRecordNotFound
	}
	return income, nil
}

func (s *financeService) DeleteIncome(ctx context.Context, projectID, id string) error {
	deleted, err := s.incomeRepo.Delete(ctx, projectID, id)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if !deleted {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (s *financeService) ListExpenses(ctx context.Context, projectID string) ([]domain.Expense, error) {
	items, err := s.expenseRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return items, nil
}

func (s *financeService) CreateExpense(ctx context.Context, projectID string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	expense, err := s.expenseRepo.Create(ctx, projectID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

func (s *financeService) UpdateExpense(ctx context.Context, projectID, id string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	expense, err := s.expenseRepo.Update(ctx, projectID, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	if expense == nil {
		return nil, domain.ErrRecordNotFound
	}
	return expense, nil
}

func (s *financeService) DeleteExpense(ctx context.Context, projectID, id string) error {
	deleted, err := s.expenseRepo.Delete(ctx, projectID, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Stats sums income and expenses for a project in one pass over each list.
func (s *financeService) Stats(ctx context.Context, projectID string) (*domain.ProjectStats, error) {
	income, err := s.incomeRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income for stats: %w", err)
	}
	expenses, err := s.expenseRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for stats: %w", err)
	}

	stats := &domain.ProjectStats{
		IncomeCount:  len(income),
		ExpenseCount: len(expenses),
	}
	for _, in := range income {
		stats.TotalIncome += in.Amount
	}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
	}
	stats.NetBalance = stats.TotalIncome - stats.TotalExpenses

	return stats, nil
}
