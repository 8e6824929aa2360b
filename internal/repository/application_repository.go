package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"partnerup/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Application, error)
	UpdateStatusIfPending(ctx context.Context, app *domain.Application, status domain.ApplicationStatus) (bool, error)
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `a.id, a.project_id, a.applicant_id, a.status, a.message, a.applied_at, a.updated_at`

type applicantRow struct {
	domain.Application
	domain.ApplicantSummary
}

type applicationWithProjectRow struct {
	domain.Application
	domain.ProjectSummary
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, project_id, applicant_id, status, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING applied_at, updated_at`

	return conn(ctx, r.db).QueryRowxContext(ctx, query,
		app.ID, app.ProjectID, app.ApplicantID, app.Status, app.Message,
	).Scan(&app.AppliedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	err := conn(ctx, r.db).GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Application, error) {
	var rows []applicantRow
	query := `SELECT ` + applicationColumns + `,
			pr.full_name AS applicant_full_name,
			COALESCE(pr.email, '') AS applicant_email,
			COALESCE(pr.skills, '{}') AS applicant_skills,
			pr.bio AS applicant_bio,
			pr.work_experience AS applicant_work_experience,
			pr.education AS applicant_education
		FROM applications a
		LEFT JOIN profiles pr ON pr.id = a.applicant_id
		WHERE a.project_id = $1
		ORDER BY a.applied_at DESC`

	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, err
	}

	apps := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		app := row.Application
		applicant := row.ApplicantSummary
		app.Applicant = &applicant
		apps = append(apps, app)
	}
	return apps, nil
}

// ListByApplicant joins through projects, so applications whose project no
// longer exists are not returned.
func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Application, error) {
	var rows []applicationWithProjectRow
	query := `SELECT ` + applicationColumns + `, p.title AS project_title
		FROM applications a
		JOIN projects p ON p.id = a.project_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, applicantID); err != nil {
		return nil, err
	}

	apps := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		app := row.Application
		summary := row.ProjectSummary
		app.Project = &summary
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatusIfPending moves a pending application to status. It reports
// false when the row was no longer pending, leaving app untouched.
func (r *applicationRepository) UpdateStatusIfPending(ctx context.Context, app *domain.Application, status domain.ApplicationStatus) (bool, error) {
	query := `
		UPDATE applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING updated_at`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query, app.ID, status, domain.ApplicationPending).Scan(&app.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	app.Status = status
	return true, nil
}

func (r *applicationRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	query := `DELETE FROM applications WHERE project_id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, projectID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
