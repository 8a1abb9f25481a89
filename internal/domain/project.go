package domain

import (
	"errors"
	"strings"
	"time"
)

// ContributionProjectName is the fixed project that verified contributions
// are recorded under.
const ContributionProjectName = "veritas25"

type Project struct {
	ID           string    `json:"id"`
	ProjectName  string    `json:"project_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectSummary is the public shape of a project, safe to list without
// authentication.
type ProjectSummary struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Project) Summary() ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		CreatedAt:   p.CreatedAt,
	}
}

type AuthenticateRequest struct {
	ProjectName string `json:"project_name"`
	Password    string `json:"password"`
}

func (r *AuthenticateRequest) Normalize() {
	r.ProjectName = strings.TrimSpace(r.ProjectName)
}

func (r *AuthenticateRequest) Validate() error {
	if r.ProjectName == "" {
		return errors.New("project name is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
