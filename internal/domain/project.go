package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectStatus string

const (
	ProjectOpen   ProjectStatus = "open"
	ProjectClosed ProjectStatus = "closed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectOpen, ProjectClosed:
		return true
	}
	return false
}

type Project struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Title          string         `json:"title" db:"title"`
	Description    string         `json:"description" db:"description"`
	RequiredSkills pq.StringArray `json:"required_skills" db:"required_skills"`
	Duration       string         `json:"duration" db:"duration"`
	TeamSize       string         `json:"team_size" db:"team_size"`
	Status         ProjectStatus  `json:"status" db:"status"`
	OwnerID        uuid.UUID      `json:"owner_id" db:"owner_id"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`

	Owner *OwnerSummary `json:"owner,omitempty" db:"-"`
}

func (p *Project) RequiresSkill(skill string) bool {
	for _, s := range p.RequiredSkills {
		if s == skill {
			return true
		}
	}
	return false
}

type CreateProjectInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Duration       string   `json:"duration"`
	TeamSize       string   `json:"team_size"`
}

type UpdateProjectStatusInput struct {
	Status ProjectStatus `json:"status"`
}
