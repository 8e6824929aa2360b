package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/metrics"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
	"partnerup/internal/service/events"
)

type Service interface {
	Apply(ctx context.Context, applicantID uuid.UUID, input domain.ApplyInput) (*domain.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.StatusChange, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Application, error)
	ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Application, error)
}

type service struct {
	appRepo     repository.ApplicationRepository
	projectRepo repository.ProjectRepository
	bus         events.Bus
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(appRepo repository.ApplicationRepository, projectRepo repository.ProjectRepository, bus events.Bus, logger *slog.Logger) Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		appRepo:     appRepo,
		projectRepo: projectRepo,
		bus:         bus,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *service) Apply(ctx context.Context, applicantID uuid.UUID, input domain.ApplyInput) (*domain.Application, error) {
	if input.ProjectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", domain.ErrSeedProject.Error())
	}

	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, domain.NewNotFoundError("project", input.ProjectID)
	}
	if project.OwnerID == applicantID {
		return nil, domain.NewValidationError("project_id", "you cannot apply to your own project")
	}
	if project.Status != domain.ProjectOpen {
		return nil, domain.NewValidationError("project_id", "project is not accepting applications")
	}

	app := &domain.Application{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		ApplicantID: applicantID,
		Status:      domain.ApplicationPending,
	}
	if input.Message != nil && strings.TrimSpace(*input.Message) != "" {
		msg := *input.Message
		app.Message = &msg
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			metrics.ApplicationsDuplicate.Inc()
			return nil, domain.ErrDuplicateApplication
		case repository.IsForeignKeyViolation(err):
			return nil, domain.NewNotFoundError("project", input.ProjectID)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	metrics.ApplicationsCreated.Inc()
	s.logger.Info("application submitted", "application_id", app.ID, "project_id", app.ProjectID, "applicant_id", applicantID)

	return app, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.NewNotFoundError("application", id)
	}
	return app, nil
}

// SetStatus moves a pending application to accepted or rejected and then
// publishes ApplicationStatusChanged. A failing subscriber does not undo the
// transition; the failure is reported on the returned StatusChange.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.StatusChange, error) {
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return nil, domain.NewValidationError("status", "must be accepted or rejected")
	}

	app, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status.IsTerminal() {
		return nil, domain.ErrInvalidTransition
	}

	project, err := s.projectRepo.GetByID(ctx, app.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, domain.NewNotFoundError("project", app.ProjectID)
	}

	oldStatus := app.Status
	updated, err := s.appRepo.UpdateStatusIfPending(ctx, app, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	if !updated {
		return nil, domain.ErrInvalidTransition
	}

	metrics.ApplicationTransitions.WithLabelValues(string(status)).Inc()
	s.logger.Info("application status changed",
		"application_id", app.ID, "project_id", app.ProjectID, "from", oldStatus, "to", status)

	change := &domain.StatusChange{Application: app}
	s.publish(ctx, change, domain.ApplicationStatusChanged{
		ApplicationID: app.ID,
		ProjectID:     app.ProjectID,
		ApplicantID:   app.ApplicantID,
		ProjectTitle:  project.Title,
		OldStatus:     oldStatus,
		NewStatus:     status,
		OccurredAt:    s.now(),
	})

	return change, nil
}

func (s *service) publish(ctx context.Context, change *domain.StatusChange, evt domain.ApplicationStatusChanged) {
	if s.bus == nil || !s.bus.HasSubscribers(evt.Type()) {
		return
	}

	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.NotificationFailures.Inc()
		s.logger.Warn("status change side effects failed",
			"application_id", evt.ApplicationID, "applicant_id", evt.ApplicantID, "error", err)
		change.NotificationError = err
		return
	}
	change.NotificationCreated = true
}

func (s *service) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Application, error) {
	apps, err := s.appRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project applications: %w", err)
	}
	return apps, nil
}

func (s *service) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Application, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}
