package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifApplicationStatus NotificationType = "application_status"
)

// Notification is addressed to exactly one user. Data carries a JSON payload
// whose shape depends on Type.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// ApplicationStatusData is the payload of an application_status notification.
type ApplicationStatusData struct {
	ApplicationID uuid.UUID         `json:"application_id"`
	ProjectID     uuid.UUID         `json:"project_id"`
	Status        ApplicationStatus `json:"status"`
}
