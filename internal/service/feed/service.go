package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
	"partnerup/internal/service/matching"
	"partnerup/internal/service/project"
)

type Service interface {
	Get(ctx context.Context, viewerID uuid.UUID, query domain.FeedQuery) (*domain.Feed, error)
	Catalogue() []string
}

type service struct {
	profileRepo repository.ProfileRepository
	projects    project.Service
	seeds       *Seeds
	logger      *slog.Logger
}

// NewService builds the feed. A nil seeds disables the fallback.
func NewService(profileRepo repository.ProfileRepository, projects project.Service, seeds *Seeds, logger *slog.Logger) Service {
	if seeds == nil {
		seeds = &Seeds{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		profileRepo: profileRepo,
		projects:    projects,
		seeds:       seeds,
		logger:      logger,
	}
}

// Get builds the viewer's feed. When skill matching leaves nothing from the
// registry, the seed projects stand in for it and the feed is marked as a
// fallback. Seeds are matched against the viewer's skills as well.
func (s *service) Get(ctx context.Context, viewerID uuid.UUID, query domain.FeedQuery) (*domain.Feed, error) {
	var skills []string
	profile, err := s.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		skills = profile.Skills
	}

	open, err := s.projects.ListOpenExcludingOwner(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	registry := make([]domain.FeedItem, 0, len(open))
	for _, p := range open {
		registry = append(registry, domain.RegistryItem(p))
	}

	source := visibleItems(registry, viewerID, skills)
	visible := source
	fallback := len(source) == 0
	if fallback {
		source = s.seeds.Projects
		visible = visibleItems(source, viewerID, skills)
		s.logger.Debug("serving seed projects", "viewer_id", viewerID, "open_projects", len(open))
	}

	return &domain.Feed{
		Items:      Compose(visible, query.Search, query.Skill),
		Skills:     UniqueSkills(source),
		IsFallback: fallback,
	}, nil
}

func visibleItems(items []domain.FeedItem, viewerID uuid.UUID, skills []string) []domain.FeedItem {
	visible := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if matching.IsVisible(item.Project(), viewerID, skills) {
			visible = append(visible, item)
		}
	}
	return visible
}

func (s *service) Catalogue() []string {
	out := make([]string, len(s.seeds.Skills))
	copy(out, s.seeds.Skills)
	return out
}
