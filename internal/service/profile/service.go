package profile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"partnerup/internal/config"
	"partnerup/internal/domain"
	"partnerup/internal/pkg/logging"
	"partnerup/internal/repository"
)

const MaxResumeSize = 10 * 1024 * 1024

var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ObjectStorage is the part of *minio.Client used for resumes.
type ObjectStorage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type Service interface {
	EnsureProfile(ctx context.Context, id uuid.UUID, email, fullName string) (*domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateProfileInput) (*domain.Profile, error)
	UploadResume(ctx context.Context, id uuid.UUID, fileName string, fileSize int64, contentType string, reader io.Reader) (*domain.Profile, error)
}

type service struct {
	profileRepo repository.ProfileRepository
	storage     ObjectStorage
	cfg         *config.Config
	logger      *slog.Logger
}

// NewService builds the profile service. storage may be nil, in which case
// resume uploads fail with domain.ErrStorageUnavailable.
func NewService(profileRepo repository.ProfileRepository, storage ObjectStorage, cfg *config.Config, logger *slog.Logger) Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		profileRepo: profileRepo,
		storage:     storage,
		cfg:         cfg,
		logger:      logger,
	}
}

// EnsureProfile creates the profile on first sight of a user and returns the
// stored row. Existing profiles are left untouched.
func (s *service) EnsureProfile(ctx context.Context, id uuid.UUID, email, fullName string) (*domain.Profile, error) {
	profile := &domain.Profile{
		ID:     id,
		Email:  email,
		Skills: []string{},
	}
	if name := strings.TrimSpace(fullName); name != "" {
		profile.FullName = &name
	}

	if err := s.profileRepo.CreateIfNotExists(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.NewNotFoundError("profile", id)
	}
	return profile, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, domain.NewValidationError("full_name", "must not be blank")
		}
		profile.FullName = &name
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.Skills != nil {
		profile.Skills = domain.NormalizeSkills(*input.Skills)
	}
	if input.WorkExperience != nil {
		profile.WorkExperience = input.WorkExperience
	}
	if input.Education != nil {
		profile.Education = input.Education
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = input.AvatarURL
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) UploadResume(ctx context.Context, id uuid.UUID, fileName string, fileSize int64, contentType string, reader io.Reader) (*domain.Profile, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if fileSize <= 0 || fileSize > MaxResumeSize {
		return nil, domain.NewValidationError("file", "resume must be between 1 byte and 10MB")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	expected, ok := resumeTypes[ext]
	if !ok {
		return nil, domain.NewValidationError("file", "resume must be a PDF, DOC or DOCX file")
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = expected
	}

	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s%s/%s%s", config.ResumePrefix, id, uuid.New(), ext)
	if _, err := s.storage.PutObject(ctx, s.cfg.MinIOBucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("failed to upload resume: %w", err)
	}

	url := s.cfg.PublicObjectURL(objectName)
	profile.ResumeURL = &url
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if rmErr := s.storage.RemoveObject(ctx, s.cfg.MinIOBucket, objectName, minio.RemoveObjectOptions{}); rmErr != nil {
			s.logger.Warn("failed to remove orphaned resume", "object", objectName, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Info("resume uploaded", "profile_id", id, "object", objectName)
	return profile, nil
}
