package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventApplicationStatusChanged EventType = "application.status_changed"
)

// ApplicationStatusChanged is published after an application transition has
// been committed. Consumers must not assume they run inside the transition.
type ApplicationStatusChanged struct {
	ApplicationID uuid.UUID         `json:"application_id"`
	ProjectID     uuid.UUID         `json:"project_id"`
	ApplicantID   uuid.UUID         `json:"applicant_id"`
	ProjectTitle  string            `json:"project_title"`
	OldStatus     ApplicationStatus `json:"old_status"`
	NewStatus     ApplicationStatus `json:"new_status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

func (ApplicationStatusChanged) Type() EventType {
	return EventApplicationStatusChanged
}
