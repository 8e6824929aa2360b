package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerup/internal/domain"
	"partnerup/internal/mocks"
	"partnerup/internal/service/project"
)

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func validInput() domain.CreateProjectInput {
	return domain.CreateProjectInput{
		Title:          "Open Source CLI",
		Description:    "A developer tool",
		RequiredSkills: []string{" Go ", "Docker", "Go", ""},
		Duration:       "3 months",
		TeamSize:       "2-3 developers",
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		rdb, mr := setupRedis(t)
		require.NoError(t, mr.Set("projects:open", "[]"))
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, rdb, time.Minute, nil)

		projectRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.OwnerID == ownerID && p.Status == domain.ProjectOpen && p.ID != uuid.Nil
		})).Return(nil).Once()

		p, err := svc.Create(ctx, ownerID, validInput())

		require.NoError(t, err)
		assert.Equal(t, pq.StringArray{"Go", "Docker"}, p.RequiredSkills)
		assert.Equal(t, "Open Source CLI", p.Title)
		assert.False(t, mr.Exists("projects:open"), "create must invalidate the open listing cache")
		projectRepo.AssertExpectations(t)
	})

	t.Run("Validation errors", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)

		cases := map[string]func(*domain.CreateProjectInput){
			"title":       func(in *domain.CreateProjectInput) { in.Title = "  " },
			"description": func(in *domain.CreateProjectInput) { in.Description = "" },
			"duration":    func(in *domain.CreateProjectInput) { in.Duration = "" },
			"team_size":   func(in *domain.CreateProjectInput) { in.TeamSize = "\t" },
		}
		for field, mutate := range cases {
			t.Run(field, func(t *testing.T) {
				in := validInput()
				mutate(&in)

				p, err := svc.Create(ctx, ownerID, in)

				assert.Nil(t, p)
				assert.ErrorIs(t, err, domain.ErrValidation)
				var ve *domain.ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, field, ve.Field)
			})
		}
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty skills are allowed", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)
		projectRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil).Once()

		in := validInput()
		in.RequiredSkills = nil
		p, err := svc.Create(ctx, ownerID, in)

		require.NoError(t, err)
		assert.NotNil(t, p.RequiredSkills)
		assert.Empty(t, p.RequiredSkills)
	})
}

func TestProjectService_ListOpen(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	other := uuid.New()

	open := []domain.Project{
		{ID: uuid.New(), Title: "Mine", OwnerID: viewer, Status: domain.ProjectOpen},
		{ID: uuid.New(), Title: "Theirs", OwnerID: other, Status: domain.ProjectOpen, RequiredSkills: pq.StringArray{"Go"}},
	}

	t.Run("Caches the listing", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		rdb, mr := setupRedis(t)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, rdb, time.Minute, nil)
		projectRepo.On("ListOpen", ctx).Return(open, nil).Once()

		first, err := svc.ListOpen(ctx)
		require.NoError(t, err)
		assert.True(t, mr.Exists("projects:open"))

		second, err := svc.ListOpen(ctx)
		require.NoError(t, err)

		assert.Len(t, second, 2)
		assert.Equal(t, first[1].ID, second[1].ID)
		assert.Equal(t, pq.StringArray{"Go"}, second[1].RequiredSkills)
		projectRepo.AssertNumberOfCalls(t, "ListOpen", 1)
	})

	t.Run("Excludes the viewer's own projects", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)
		projectRepo.On("ListOpen", ctx).Return(open, nil).Once()

		got, err := svc.ListOpenExcludingOwner(ctx, viewer)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Theirs", got[0].Title)
	})

	t.Run("Storage error", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)
		boom := errors.New("connection refused")
		projectRepo.On("ListOpen", ctx).Return(nil, boom).Once()

		got, err := svc.ListOpen(ctx)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, boom)
	})
}

func TestProjectService_SetStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Closes the project", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		rdb, mr := setupRedis(t)
		require.NoError(t, mr.Set("projects:open", "[]"))
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, rdb, time.Minute, nil)

		projectRepo.On("UpdateStatus", ctx, id, domain.ProjectClosed).Return(int64(1), nil).Once()
		projectRepo.On("GetByID", ctx, id).Return(&domain.Project{ID: id, Status: domain.ProjectClosed}, nil).Once()

		p, err := svc.SetStatus(ctx, id, domain.ProjectClosed)

		require.NoError(t, err)
		assert.Equal(t, domain.ProjectClosed, p.Status)
		assert.False(t, mr.Exists("projects:open"))
	})

	t.Run("Invalid status", func(t *testing.T) {
		svc := project.NewService(new(mocks.ProjectRepository), new(mocks.ApplicationRepository), nil, nil, 0, nil)

		_, err := svc.SetStatus(ctx, id, "archived")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Missing project", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)
		projectRepo.On("UpdateStatus", ctx, id, domain.ProjectOpen).Return(int64(0), nil).Once()

		_, err := svc.SetStatus(ctx, id, domain.ProjectOpen)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &domain.Project{ID: id, Title: "To delete", OwnerID: uuid.New()}

	t.Run("Purges applications then the project inside a transaction", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		appRepo := new(mocks.ApplicationRepository)
		tx := new(mocks.Transactor)
		rdb, mr := setupRedis(t)
		require.NoError(t, mr.Set("projects:open", "[]"))
		svc := project.NewService(projectRepo, appRepo, tx, rdb, time.Minute, nil)

		var order []string
		projectRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
		tx.On("WithinTx", ctx).Return(nil).Once()
		appRepo.On("DeleteByProject", ctx, id).Return(int64(3), nil).Once().
			Run(func(mock.Arguments) { order = append(order, "applications") })
		projectRepo.On("Delete", ctx, id).Return(int64(1), nil).Once().
			Run(func(mock.Arguments) { order = append(order, "project") })

		err := svc.Delete(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, []string{"applications", "project"}, order)
		assert.False(t, mr.Exists("projects:open"))
		tx.AssertExpectations(t)
		appRepo.AssertExpectations(t)
		projectRepo.AssertExpectations(t)
	})

	t.Run("Missing project", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		appRepo := new(mocks.ApplicationRepository)
		svc := project.NewService(projectRepo, appRepo, nil, nil, 0, nil)
		projectRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		err := svc.Delete(ctx, id)

		var nf *domain.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "project", nf.Entity)
		appRepo.AssertNotCalled(t, "DeleteByProject", mock.Anything, mock.Anything)
	})

	t.Run("Partial failure without a transaction", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		appRepo := new(mocks.ApplicationRepository)
		svc := project.NewService(projectRepo, appRepo, nil, nil, 0, nil)
		boom := errors.New("connection reset")

		projectRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
		appRepo.On("DeleteByProject", ctx, id).Return(int64(2), nil).Once()
		projectRepo.On("Delete", ctx, id).Return(int64(0), boom).Once()

		err := svc.Delete(ctx, id)

		var cascadeErr *domain.CascadeDeleteError
		require.True(t, errors.As(err, &cascadeErr))
		assert.Equal(t, int64(2), cascadeErr.ApplicationsDeleted)
		assert.Equal(t, id, cascadeErr.ProjectID)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Purge failure leaves the project alone", func(t *testing.T) {
		projectRepo := new(mocks.ProjectRepository)
		appRepo := new(mocks.ApplicationRepository)
		tx := new(mocks.Transactor)
		svc := project.NewService(projectRepo, appRepo, tx, nil, 0, nil)
		boom := errors.New("lock timeout")

		projectRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
		tx.On("WithinTx", ctx).Return(nil).Once()
		appRepo.On("DeleteByProject", ctx, id).Return(int64(0), boom).Once()

		err := svc.Delete(ctx, id)

		assert.ErrorIs(t, err, boom)
		var cascadeErr *domain.CascadeDeleteError
		assert.False(t, errors.As(err, &cascadeErr))
		projectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProjectService_EnsureOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()
	projectRepo := new(mocks.ProjectRepository)
	svc := project.NewService(projectRepo, new(mocks.ApplicationRepository), nil, nil, 0, nil)
	projectRepo.On("GetByID", ctx, id).Return(&domain.Project{ID: id, OwnerID: ownerID}, nil)

	t.Run("Owner", func(t *testing.T) {
		p, err := svc.EnsureOwner(ctx, id, ownerID)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
	})

	t.Run("Someone else", func(t *testing.T) {
		p, err := svc.EnsureOwner(ctx, id, uuid.New())
		assert.Nil(t, p)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
