package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
	"partnerup/internal/service/events"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	HandleStatusChanged(ctx context.Context, evt domain.ApplicationStatusChanged) error
	Subscribe(bus events.Bus)
}

type service struct {
	notifRepo repository.NotificationRepository
	logger    *slog.Logger
}

func NewService(notifRepo repository.NotificationRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		notifRepo: notifRepo,
		logger:    logger,
	}
}

// Subscribe registers the status-change consumer on bus.
func (s *service) Subscribe(bus events.Bus) {
	bus.Subscribe(domain.EventApplicationStatusChanged, func(ctx context.Context, evt events.Event) error {
		changed, ok := evt.(domain.ApplicationStatusChanged)
		if !ok {
			return fmt.Errorf("unexpected event %T", evt)
		}
		return s.HandleStatusChanged(ctx, changed)
	})
}

func (s *service) HandleStatusChanged(ctx context.Context, evt domain.ApplicationStatusChanged) error {
	title, message := statusText(evt.ProjectTitle, evt.NewStatus)

	data, err := json.Marshal(domain.ApplicationStatusData{
		ApplicationID: evt.ApplicationID,
		ProjectID:     evt.ProjectID,
		Status:        evt.NewStatus,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification data: %w", err)
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  evt.ApplicantID,
		Type:    domain.NotifApplicationStatus,
		Title:   title,
		Message: message,
		Data:    json.RawMessage(data),
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.logger.Debug("notification created", "notification_id", notif.ID, "user_id", notif.UserID)
	return nil
}

func statusText(projectTitle string, status domain.ApplicationStatus) (string, string) {
	if status == domain.ApplicationAccepted {
		return "Application Accepted!", fmt.Sprintf(`Your application for "%s" has been accepted!`, projectTitle)
	}
	return "Application Update", fmt.Sprintf(`Your application for "%s" has been %s.`, projectTitle, status)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, unreadOnly)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// MarkAsRead flags one of the user's notifications as read. Marking an
// already-read notification is a no-op.
func (s *service) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.notifRepo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil || notif.UserID != userID {
		return domain.NewNotFoundError("notification", id)
	}
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}
