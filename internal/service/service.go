package service

import (
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"partnerup/internal/config"
	"partnerup/internal/repository"
	"partnerup/internal/service/application"
	"partnerup/internal/service/auth"
	"partnerup/internal/service/events"
	"partnerup/internal/service/feed"
	"partnerup/internal/service/notification"
	"partnerup/internal/service/profile"
	"partnerup/internal/service/project"
)

type Services struct {
	Auth         auth.Service
	Profile      profile.Service
	Project      project.Service
	Application  application.Service
	Notification notification.Service
	Feed         feed.Service
}

// NewServices wires the services together. minioClient may be nil, in which
// case resume uploads answer 503.
func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	seeds, err := feed.DefaultSeeds()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed projects: %w", err)
	}

	bus := events.NewBus()

	notificationService := notification.NewService(repos.Notification, logger)
	notificationService.Subscribe(bus)

	projectService := project.NewService(repos.Project, repos.Application, repos.Tx, redis, cfg.FeedCacheTTL, logger)
	applicationService := application.NewService(repos.Application, repos.Project, bus, logger)

	var storage profile.ObjectStorage
	if minioClient != nil {
		storage = minioClient
	}
	profileService := profile.NewService(repos.Profile, storage, cfg, logger)

	feedService := feed.NewService(repos.Profile, projectService, seeds, logger)

	return &Services{
		Auth:         auth.NewService(cfg),
		Profile:      profileService,
		Project:      projectService,
		Application:  applicationService,
		Notification: notificationService,
		Feed:         feedService,
	}, nil
}
