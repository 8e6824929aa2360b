package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	ProjectID   uuid.UUID         `json:"project_id" db:"project_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	Message     *string           `json:"message" db:"message"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`

	Applicant *ApplicantSummary `json:"applicant,omitempty" db:"-"`
	Project   *ProjectSummary   `json:"project,omitempty" db:"-"`
}

// ProjectSummary is joined onto an applicant's own list of applications.
type ProjectSummary struct {
	Title string `json:"title" db:"project_title"`
}

type ApplyInput struct {
	ProjectID uuid.UUID `json:"project_id"`
	Message   *string   `json:"message,omitempty"`
}

type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status"`
}

// StatusChange is the outcome of an owner decision. The transition is the
// primary effect; the applicant notification is best-effort and its failure is
// reported here instead of undoing the transition.
type StatusChange struct {
	Application         *Application `json:"application"`
	NotificationCreated bool         `json:"notification_created"`
	NotificationError   error        `json:"-"`
}
