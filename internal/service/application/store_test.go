package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"partnerup/internal/domain"
)

// memStore backs the project and application repositories with maps and
// enforces the same constraints as the PostgreSQL schema.
type memStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]domain.Project
	apps     []domain.Application
}

func newMemStore() *memStore {
	return &memStore{projects: make(map[uuid.UUID]domain.Project)}
}

type memProjects struct{ s *memStore }

type memApplications struct{ s *memStore }

func (r memProjects) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.projects[p.ID] = *p
	return nil
}

func (r memProjects) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProjects) ListOpen(_ context.Context) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Project{}
	for _, p := range r.s.projects {
		if p.Status == domain.ProjectOpen {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProjects) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Project{}
	for _, p := range r.s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProjects) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ProjectStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return 0, nil
	}
	p.Status = status
	r.s.projects[id] = p
	return 1, nil
}

func (r memProjects) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return 0, nil
	}
	for _, a := range r.s.apps {
		if a.ProjectID == id {
			return 0, &pq.Error{Code: "23503", Message: "violates foreign key constraint"}
		}
	}
	delete(r.s.projects, id)
	return 1, nil
}

func (r memApplications) Create(_ context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[app.ProjectID]; !ok {
		return &pq.Error{Code: "23503", Message: "violates foreign key constraint"}
	}
	for _, a := range r.s.apps {
		if a.ProjectID == app.ProjectID && a.ApplicantID == app.ApplicantID {
			return &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
		}
	}
	app.AppliedAt = time.Now()
	app.UpdatedAt = app.AppliedAt
	r.s.apps = append(r.s.apps, *app)
	return nil
}

func (r memApplications) GetByID(_ context.Context, id uuid.UUID) (*domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.apps {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r memApplications) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Application{}
	for i := len(r.s.apps) - 1; i >= 0; i-- {
		if r.s.apps[i].ProjectID == projectID {
			out = append(out, r.s.apps[i])
		}
	}
	return out, nil
}

func (r memApplications) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]domain.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Application{}
	for i := len(r.s.apps) - 1; i >= 0; i-- {
		a := r.s.apps[i]
		p, ok := r.s.projects[a.ProjectID]
		if a.ApplicantID != applicantID || !ok {
			continue
		}
		a.Project = &domain.ProjectSummary{Title: p.Title}
		out = append(out, a)
	}
	return out, nil
}

func (r memApplications) UpdateStatusIfPending(_ context.Context, app *domain.Application, status domain.ApplicationStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.apps {
		if r.s.apps[i].ID != app.ID {
			continue
		}
		if r.s.apps[i].Status != domain.ApplicationPending {
			return false, nil
		}
		r.s.apps[i].Status = status
		r.s.apps[i].UpdatedAt = time.Now()
		app.Status = status
		app.UpdatedAt = r.s.apps[i].UpdatedAt
		return true, nil
	}
	return false, nil
}

func (r memApplications) DeleteByProject(_ context.Context, projectID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.apps[:0]
	var deleted int64
	for _, a := range r.s.apps {
		if a.ProjectID == projectID {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	r.s.apps = kept
	return deleted, nil
}
