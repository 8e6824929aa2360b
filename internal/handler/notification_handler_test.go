package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partnerup/internal/domain"
	"partnerup/internal/handler"
	"partnerup/internal/mocks"
)

func TestNotificationHandler(t *testing.T) {
	userID := uuid.New()
	notifID := uuid.New()

	newApp := func(notifs *mocks.NotificationService) func(*http.Request) (*http.Response, error) {
		app := newTestApp(userID)
		h := handler.NewNotificationHandler(notifs)
		app.Get("/notifications", h.List)
		app.Get("/notifications/unread-count", h.GetUnreadCount)
		app.Patch("/notifications/:id/read", h.MarkAsRead)
		app.Post("/notifications/mark-all-read", h.MarkAllAsRead)
		return func(req *http.Request) (*http.Response, error) { return app.Test(req) }
	}

	t.Run("unread filter is passed through", func(t *testing.T) {
		notifs := new(mocks.NotificationService)
		notifs.On("List", mock.Anything, userID, true).Return([]domain.Notification{
			{ID: notifID, UserID: userID, Title: "Application Accepted!"},
		}, nil)

		resp, err := newApp(notifs)(httptest.NewRequest(http.MethodGet, "/notifications?unread_only=true", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeBody(t, resp)["data"], 1)
	})

	t.Run("unread count", func(t *testing.T) {
		notifs := new(mocks.NotificationService)
		notifs.On("GetUnreadCount", mock.Anything, userID).Return(int64(3), nil)

		resp, err := newApp(notifs)(httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
		require.NoError(t, err)
		assert.Equal(t, float64(3), decodeBody(t, resp)["count"])
	})

	t.Run("mark as read of someone else's notification is 404", func(t *testing.T) {
		notifs := new(mocks.NotificationService)
		notifs.On("MarkAsRead", mock.Anything, userID, notifID).
			Return(domain.NewNotFoundError("notification", notifID))

		resp, err := newApp(notifs)(httptest.NewRequest(http.MethodPatch, "/notifications/"+notifID.String()+"/read", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("mark as read", func(t *testing.T) {
		notifs := new(mocks.NotificationService)
		notifs.On("MarkAsRead", mock.Anything, userID, notifID).Return(nil)

		resp, err := newApp(notifs)(httptest.NewRequest(http.MethodPatch, "/notifications/"+notifID.String()+"/read", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("mark all as read reports the count", func(t *testing.T) {
		notifs := new(mocks.NotificationService)
		notifs.On("MarkAllAsRead", mock.Anything, userID).Return(int64(2), nil)

		resp, err := newApp(notifs)(httptest.NewRequest(http.MethodPost, "/notifications/mark-all-read", nil))
		require.NoError(t, err)
		assert.Equal(t, float64(2), decodeBody(t, resp)["updated"])
	})
}
