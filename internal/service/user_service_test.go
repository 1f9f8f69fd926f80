package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entsettings "planwise.io/planwise/ent/notificationsettings"
	entuser "planwise.io/planwise/ent/user"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestUserServiceRegister(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "user_register")
	svc := NewUserService(client)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice@Example.com", "Alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Registration also creates the default settings row.
	settings, err := client.NotificationSettings.Query().
		Where(entsettings.HasUserWith(entuser.IDEQ(user.ID))).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, settings.EmailNotifications)
	assert.True(t, settings.PushNotifications)
	assert.True(t, settings.EventReminders)
	assert.False(t, settings.MarketingEmails)
	assert.Equal(t, 15, settings.ReminderLeadMinutes)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "user_dup")
	svc := NewUserService(client)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@example.com", "Bob", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "BOB@example.com", "Bob Again", "password456")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEmailTaken, appErr.Code)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "user_validation")
	svc := NewUserService(client)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "NoEmail", "password123")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "short@example.com", "Short", "short")
	assert.Error(t, err)
}

func TestUserServiceAuthenticate(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "user_auth")
	svc := NewUserService(client)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "carol@example.com", "Carol", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "carol@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "carol@example.com", "battery-staple")
		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "whatever1")
		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})
}

func TestUserServiceGetUser(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "user_get")
	svc := NewUserService(client)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "dave@example.com", "Dave", "password123")
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", user.Email)

	_, err = svc.GetUser(ctx, "missing-id")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUserNotFound, appErr.Code)
}
