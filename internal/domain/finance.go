package domain

import (
	"errors"
	"time"
)

type Income struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Name         string    `json:"name"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	Amount       float64   `json:"amount"`
	Description  *string   `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	CalledStatus bool      `json:"called_status"`
	CalledBy     *string   `json:"called_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Expense struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectStats is the derived aggregate over a project's records.
type ProjectStats struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetBalance    float64 `json:"netBalance"`
	IncomeCount   int     `json:"incomeCount"`
	ExpenseCount  int     `json:"expenseCount"`
}

type CreateIncomeRequest struct {
	Name         string  `json:"name"`
	PhoneNumber  *string `json:"phone_number"`
	Amount       float64 `json:"amount"`
	Description  *string `json:"description"`
	Date         string  `json:"date"` // YYYY-MM-DD
	CalledStatus bool    `json:"called_status"`
	CalledBy     *string `json:"called_by"`
}

func (r *CreateIncomeRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Category    string  `json:"category"`
}

func (r *CreateExpenseRequest) Validate() error {
	if r.Description == "" {
		return errors.New("description is required")
	}
	if r.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}
