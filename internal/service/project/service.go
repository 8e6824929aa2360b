package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"partnerup/internal/domain"
	"partnerup/internal/metrics"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
)

const openProjectsCacheKey = "projects:open"

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListOpen(ctx context.Context) ([]domain.Project, error)
	ListOpenExcludingOwner(ctx context.Context, viewerID uuid.UUID) ([]domain.Project, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	EnsureOwner(ctx context.Context, projectID, userID uuid.UUID) (*domain.Project, error)
}

type service struct {
	projectRepo repository.ProjectRepository
	appRepo     repository.ApplicationRepository
	tx          repository.Transactor
	redis       *redis.Client
	cacheTTL    time.Duration
	logger      *slog.Logger
}

// NewService builds the registry. tx may be nil, in which case Delete runs
// its two statements separately and reports a partial failure with
// *domain.CascadeDeleteError. redis may be nil to disable the listing cache.
func NewService(
	projectRepo repository.ProjectRepository,
	appRepo repository.ApplicationRepository,
	tx repository.Transactor,
	redis *redis.Client,
	cacheTTL time.Duration,
	logger *slog.Logger,
) Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		projectRepo: projectRepo,
		appRepo:     appRepo,
		tx:          tx,
		redis:       redis,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input domain.CreateProjectInput) (*domain.Project, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		RequiredSkills: domain.NormalizeSkills(input.RequiredSkills),
		Duration:       strings.TrimSpace(input.Duration),
		TeamSize:       strings.TrimSpace(input.TeamSize),
		Status:         domain.ProjectOpen,
		OwnerID:        ownerID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidateCache(ctx)
	s.logger.Info("project created", "project_id", project.ID, "owner_id", ownerID)

	return project, nil
}

func validateCreate(input domain.CreateProjectInput) error {
	required := []struct {
		field string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"duration", input.Duration},
		{"team_size", input.TeamSize},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.NewValidationError(r.field, "is required")
		}
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NewNotFoundError("project", id)
	}
	return project, nil
}

// ListOpen returns every open project, newest first, served from the cache
// when possible.
func (s *service) ListOpen(ctx context.Context) ([]domain.Project, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, openProjectsCacheKey).Result(); err == nil {
			var projects []domain.Project
			if json.Unmarshal([]byte(cached), &projects) == nil {
				metrics.FeedCacheHits.Inc()
				return projects, nil
			}
		}
	}
	metrics.FeedCacheMisses.Inc()

	projects, err := s.projectRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open projects: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(projects); err == nil {
			if err := s.redis.Set(ctx, openProjectsCacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache open projects", "error", err)
			}
		}
	}

	return projects, nil
}

func (s *service) ListOpenExcludingOwner(ctx context.Context, viewerID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.OwnerID != viewerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *service) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned projects: %w", err)
	}
	return projects, nil
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be open or closed")
	}

	affected, err := s.projectRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}
	if affected == 0 {
		return nil, domain.NewNotFoundError("project", id)
	}

	s.invalidateCache(ctx)

	return s.GetByID(ctx, id)
}

// Delete removes the project's applications and then the project.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.NewNotFoundError("project", id)
	}

	var purged int64
	if s.tx != nil {
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			purged, err = s.deleteCascade(ctx, id)
			return err
		})
	} else {
		purged, err = s.deleteCascade(ctx, id)
	}
	if err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info("project deleted", "project_id", id, "applications_deleted", purged)

	return nil
}

func (s *service) deleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	purged, err := s.appRepo.DeleteByProject(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project applications: %w", err)
	}

	affected, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		if s.tx == nil {
			metrics.CascadeDeleteFailures.Inc()
			s.logger.Error("project delete incomplete", "project_id", id, "applications_deleted", purged, "error", err)
			return purged, &domain.CascadeDeleteError{ProjectID: id, ApplicationsDeleted: purged, Err: err}
		}
		return purged, fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return purged, domain.NewNotFoundError("project", id)
	}
	return purged, nil
}

// EnsureOwner returns the project when userID owns it and ErrForbidden
// otherwise.
func (s *service) EnsureOwner(ctx context.Context, projectID, userID uuid.UUID) (*domain.Project, error) {
	project, err := s.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, openProjectsCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate open projects cache", "error", err)
	}
}
