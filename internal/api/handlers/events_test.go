package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise.io/planwise/ent"
	"planwise.io/planwise/internal/api/middleware"
	"planwise.io/planwise/internal/notification"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/worker"
	"planwise.io/planwise/internal/service"
	"planwise.io/planwise/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type brokenInbox struct{}

func (brokenInbox) Create(ctx context.Context, params notification.Params) (string, error) {
	return "", errors.New("inbox unavailable")
}

// newEventsRouter builds a minimal engine around the event handlers. The
// auth middleware is replaced with a stub that injects the given user.
func newEventsRouter(t *testing.T, client *ent.Client, store notification.Store, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  2,
		DeliveryPoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	srv := NewServer(ServerDeps{
		Workers:  pools,
		Events:   service.NewEventService(client),
		Notifier: notification.NewTriggers(notification.NewDispatcher(store, pools, nil)),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	authStub := func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), userID, "owner@example.com"),
		)
		c.Next()
	}
	srv.RegisterRoutes(r, authStub)
	return r
}

func postEvent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateEventWritesNotificationRow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handler_event_create")
	ctx := context.Background()
	owner, err := service.NewUserService(client).Register(ctx, "owner@example.com", "Owner", "password123")
	require.NoError(t, err)

	inbox := service.NewNotificationService(client)
	r := newEventsRouter(t, client, inbox, owner.ID)

	rec := postEvent(r, `{"title":"Standup","date":"2026-06-01T14:00:00Z","time":"14:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Standup", resp.Title)

	rows, err := client.Notification.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, owner.ID, rows[0].UserID)
}

func TestCreateEventFailsWhenNotificationWriteFails(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handler_event_notiffail")
	ctx := context.Background()
	owner, err := service.NewUserService(client).Register(ctx, "owner@example.com", "Owner", "password123")
	require.NoError(t, err)

	r := newEventsRouter(t, client, brokenInbox{}, owner.ID)

	rec := postEvent(r, `{"title":"Standup","date":"2026-06-01T14:00:00Z"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])

	// The event write itself commits before the notification is attempted.
	n, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpdateEventFailsWhenNotificationWriteFails(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handler_event_updfail")
	ctx := context.Background()
	owner, err := service.NewUserService(client).Register(ctx, "owner@example.com", "Owner", "password123")
	require.NoError(t, err)

	inbox := service.NewNotificationService(client)
	okRouter := newEventsRouter(t, client, inbox, owner.ID)
	rec := postEvent(okRouter, `{"title":"Standup","date":"2026-06-01T14:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	r := newEventsRouter(t, client, brokenInbox{}, owner.ID)
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/events/%s", created.ID),
		bytes.NewBufferString(`{"title":"Standup (moved)"}`))
	req.Header.Set("Content-Type", "application/json")
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)

	assert.Equal(t, http.StatusInternalServerError, out.Code)
}
