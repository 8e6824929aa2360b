package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"partnerup/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListOpen(ctx context.Context) ([]domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectWithOwnerColumns = `
	p.id, p.title, p.description, p.required_skills, p.duration, p.team_size, p.status,
	p.owner_id, p.created_at, p.updated_at,
	pr.full_name AS owner_full_name, COALESCE(pr.email, '') AS owner_email`

type projectRow struct {
	domain.Project
	OwnerFullName *string `db:"owner_full_name"`
	OwnerEmail    string  `db:"owner_email"`
}

func (row projectRow) toDomain() domain.Project {
	p := row.Project
	p.Owner = &domain.OwnerSummary{FullName: row.OwnerFullName, Email: row.OwnerEmail}
	return p
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.RequiredSkills == nil {
		project.RequiredSkills = []string{}
	}

	query := `
		INSERT INTO projects (id, title, description, required_skills, duration, team_size, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return conn(ctx, r.db).QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.RequiredSkills,
		project.Duration, project.TeamSize, project.Status, project.OwnerID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var row projectRow
	query := `SELECT ` + projectWithOwnerColumns + `
		FROM projects p
		LEFT JOIN profiles pr ON pr.id = p.owner_id
		WHERE p.id = $1`

	err := conn(ctx, r.db).GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	project := row.toDomain()
	return &project, nil
}

func (r *projectRepository) ListOpen(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectWithOwnerColumns + `
		FROM projects p
		LEFT JOIN profiles pr ON pr.id = p.owner_id
		WHERE p.status = $1
		ORDER BY p.created_at DESC`

	return r.list(ctx, query, domain.ProjectOpen)
}

func (r *projectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	query := `SELECT ` + projectWithOwnerColumns + `
		FROM projects p
		LEFT JOIN profiles pr ON pr.id = p.owner_id
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC`

	return r.list(ctx, query, ownerID)
}

func (r *projectRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Project, error) {
	var rows []projectRow
	if err := conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toDomain())
	}
	return projects, nil
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (int64, error) {
	query := `UPDATE projects SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM projects WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
