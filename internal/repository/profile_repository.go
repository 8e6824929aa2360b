package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"partnerup/internal/domain"
)

type ProfileRepository interface {
	CreateIfNotExists(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateIfNotExists(ctx context.Context, profile *domain.Profile) error {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	query := `
		INSERT INTO profiles (id, email, full_name, skills)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	_, err := conn(ctx, r.db).ExecContext(ctx, query, profile.ID, profile.Email, profile.FullName, profile.Skills)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, email, full_name, bio, skills, work_experience, education, avatar_url, resume_url, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	err := conn(ctx, r.db).GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	query := `
		UPDATE profiles
		SET full_name = $2, bio = $3, skills = $4, work_experience = $5, education = $6,
			avatar_url = $7, resume_url = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query,
		profile.ID, profile.FullName, profile.Bio, profile.Skills, profile.WorkExperience,
		profile.Education, profile.AvatarURL, profile.ResumeURL,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError("profile", profile.ID)
	}
	return err
}
