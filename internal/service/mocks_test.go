package service_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/payments"
)

// ---------- Mocks ----------

type mockProjectRepo struct {
	projects map[string]*domain.Project // keyed by project_name
	findErr  error
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*domain.Project)}
}

func (m *mockProjectRepo) add(id, name, passwordHash string) {
	m.projects[name] = &domain.Project{
		ID:           id,
		ProjectName:  name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func (m *mockProjectRepo) FindByName(_ context.Context, projectName string) (*domain.Project, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	p, ok := m.projects[projectName]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *mockProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProjectRepo) ListSummaries(_ context.Context) ([]domain.ProjectSummary, error) {
	var summaries []domain.ProjectSummary
	for _, p := range m.projects {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}

type mockIncomeRepo struct {
	nextID    int
	items     []domain.Income
	createErr error
}

func newMockIncomeRepo() *mockIncomeRepo {
	return &mockIncomeRepo{nextID: 1}
}

func (m *mockIncomeRepo) ListByProject(_ context.Context, projectID string) ([]domain.Income, error) {
	var out []domain.Income
	for _, in := range m.items {
		if in.ProjectID == projectID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (m *mockIncomeRepo) Create(_ context.Context, projectID string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	in := domain.Income{
		ID:           fmt.Sprintf("income-%d", m.nextID),
		ProjectID:    projectID,
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         date,
		CalledStatus: req.CalledStatus,
		CalledBy:     req.CalledBy,
		CreatedAt:    time.Now(),
	}
	m.nextID++
	m.items = append(m.items, in)
	return &in, nil
}

func (m *mockIncomeRepo) Update(_ context.Context, projectID, id string, req *domain.CreateIncomeRequest) (*domain.Income, error) {
	for i, in := range m.items {
		if in.ID == id && in.ProjectID == projectID {
			date, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				return nil, err
			}
			in.Name = req.Name
			in.PhoneNumber = req.PhoneNumber
			in.Amount = req.Amount
			in.Description = req.Description
			in.Date = date
			in.CalledStatus = req.CalledStatus
			in.CalledBy = req.CalledBy
			m.items[i] = in
			return &in, nil
		}
	}
	return nil, nil
}

func (m *mockIncomeRepo) Delete(_ context.Context, projectID, id string) (bool, error) {
	for i, in := range m.items {
		if in.ID == id && in.ProjectID == projectID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockExpenseRepo struct {
	nextID int
	items  []domain.Expense
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{nextID: 1}
}

func (m *mockExpenseRepo) ListByProject(_ context.Context, projectID string) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, e := range m.items {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockExpenseRepo) Create(_ context.Context, projectID string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	e := domain.Expense{
		ID:          fmt.Sprintf("expense-%d", m.nextID),
		ProjectID:   projectID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		CreatedAt:   time.Now(),
	}
	m.nextID++
	m.items = append(m.items, e)
	return &e, nil
}

func (m *mockExpenseRepo) Update(_ context.Context, projectID, id string, req *domain.CreateExpenseRequest) (*domain.Expense, error) {
	for i, e := range m.items {
		if e.ID == id && e.ProjectID == projectID {
			date, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				return nil, err
			}
			e.Description = req.Description
			e.Amount = req.Amount
			e.Date = date
			e.Category = req.Category
			m.items[i] = e
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockExpenseRepo) Delete(_ context.Context, projectID, id string) (bool, error) {
	for i, e := range m.items {
		if e.ID == id && e.ProjectID == projectID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockOrderClient struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	lastNotes    map[string]interface{}
	createErr    error
	orderID      string
}

func (m *mockOrderClient) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (payments.Order, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.lastAmount = amountMinor
	m.lastCurrency = currency
	m.lastReceipt = receipt
	m.lastNotes = notes
	orderID := m.orderID
	if orderID == "" {
		orderID = "order_mock1"
	}
	return payments.Order{
		"id":       orderID,
		"entity":   "order",
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"status":   "created",
		"notes":    notes,
	}, nil
}

type mockMailer struct {
	lastTo      string
	lastName    string
	lastReceipt domain.Receipt
	sent        int
	sendErr     error
}

func (m *mockMailer) SendReceiptEmail(toEmail, toName string, receipt domain.Receipt) error {
	m.lastTo = toEmail
	m.lastName = toName
	m.lastReceipt = receipt
	m.sent++
	return m.sendErr
}

type mockPublisher struct {
	subjects []string
}

func (m *mockPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

var errDatabaseDown = errors.New("database down")
