package domain

import (
	"errors"
	"time"
)

// CallBoothEntry is a person queued for contact outreach under a project.
type CallBoothEntry struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Contacted   bool      `json:"contacted"`
	Answered    bool      `json:"answered"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCallBoothRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Contacted   bool   `json:"contacted"`
	Answered    bool   `json:"answered"`
}

func (r *CreateCallBoothRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.PhoneNumber == "" {
		return errors.New("phone number is required")
	}
	return nil
}

// UpdateCallBoothRequest is a partial update; nil fields are left unchanged.
type UpdateCallBoothRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Contacted   *bool   `json:"contacted"`
	Answered    *bool   `json:"answered"`
}
