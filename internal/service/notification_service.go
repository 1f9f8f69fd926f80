package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planwise.io/planwise/ent"
	"planwise.io/planwise/internal/notification"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"

	entnotification "planwise.io/planwise/ent/notification"
	entsettings "planwise.io/planwise/ent/notificationsettings"
	entuser "planwise.io/planwise/ent/user"
)

// Reminder lead time bounds, minutes.
const (
	MinReminderLead = 5
	MaxReminderLead = 60
)

// NotificationService handles the notification inbox and per-user settings.
// It also backs the dispatch pipeline as its Store and Directory.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Create persists a notification row for the dispatcher.
func (s *NotificationService) Create(ctx context.Context, params notification.Params) (string, error) {
	category, err := toEntCategory(params.Category)
	if err != nil {
		return "", err
	}

	id := uuid.Must(uuid.NewV7()).String()
	_, err = s.client.Notification.Create().
		SetID(id).
		SetCategory(category).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetRead(false).
		SetUserID(params.RecipientID).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create notification: %w", err)
	}
	return id, nil
}

// List returns a page of the user's notifications, newest first, plus the
// total count for pagination.
func (s *NotificationService) List(ctx context.Context, userID string, page, perPage int) ([]*ent.Notification, int, error) {
	base := s.client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID)))

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	items, err := base.
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	return items, total, nil
}

// UnreadCount returns how many unread notifications the user has.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification as read and stamps read_at.
// Marking an already-read notification is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*ent.Notification, error) {
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeNotificationNotFound, "notification not found")
		}
		return nil, fmt.Errorf("get notification %s: %w", notificationID, err)
	}

	if n.Read {
		return n, nil
	}

	updated, err := s.client.Notification.UpdateOne(n).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}

// MarkAllRead marks every unread notification of the user as read.
// Returns the number of rows updated.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return count, nil
}

// Delete removes one notification owned by the user.
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	affected, err := s.client.Notification.Delete().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notification %s: %w", notificationID, err)
	}
	if affected == 0 {
		return apperrors.NotFound(apperrors.CodeNotificationNotFound, "notification not found")
	}
	return nil
}

// PurgeRead removes read notifications created before the cutoff, across
// all users. Returns the number of rows removed. Unread notifications are
// kept regardless of age.
func (s *NotificationService) PurgeRead(ctx context.Context, cutoff time.Time) (int, error) {
	affected, err := s.client.Notification.Delete().
		Where(
			entnotification.ReadEQ(true),
			entnotification.CreatedAtLT(cutoff.UTC()),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge read notifications: %w", err)
	}
	return affected, nil
}

// Recipient resolves a user for the delivery relays.
func (s *NotificationService) Recipient(ctx context.Context, userID string) (notification.Recipient, error) {
	user, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return notification.Recipient{}, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return notification.Recipient{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return notification.Recipient{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// Preferences returns the user's delivery preferences. A user without a
// settings row has every delivery channel disabled: relays and the
// reminder scan treat the missing row as a silent opt-out, not as the
// registration defaults.
func (s *NotificationService) Preferences(ctx context.Context, userID string) (notification.Preferences, error) {
	row, err := s.client.NotificationSettings.Query().
		Where(entsettings.HasUserWith(entuser.IDEQ(userID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return notification.Preferences{}, nil
		}
		return notification.Preferences{}, fmt.Errorf("get settings for user %s: %w", userID, err)
	}
	return notification.Preferences{
		EmailNotifications:  row.EmailNotifications,
		PushNotifications:   row.PushNotifications,
		EventReminders:      row.EventReminders,
		MarketingEmails:     row.MarketingEmails,
		ReminderLeadMinutes: row.ReminderLeadMinutes,
	}, nil
}

// SettingsUpdate carries a partial settings update; nil fields keep their
// current value.
type SettingsUpdate struct {
	EmailNotifications  *bool
	PushNotifications   *bool
	EventReminders      *bool
	MarketingEmails     *bool
	ReminderLeadMinutes *int
}

// UpdateSettings applies a partial update to the user's settings,
// creating the row with defaults first if it is missing.
func (s *NotificationService) UpdateSettings(ctx context.Context, userID string, upd SettingsUpdate) (notification.Preferences, error) {
	if upd.ReminderLeadMinutes != nil {
		v := *upd.ReminderLeadMinutes
		if v < MinReminderLead || v > MaxReminderLead {
			return notification.Preferences{}, apperrors.BadRequest(
				apperrors.CodeSettingsInvalid,
				fmt.Sprintf("reminder lead must be between %d and %d minutes", MinReminderLead, MaxReminderLead),
			)
		}
	}

	row, err := s.client.NotificationSettings.Query().
		Where(entsettings.HasUserWith(entuser.IDEQ(userID))).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return notification.Preferences{}, fmt.Errorf("get settings for user %s: %w", userID, err)
		}
		row, err = s.client.NotificationSettings.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetUserID(userID).
			Save(ctx)
		if err != nil {
			return notification.Preferences{}, fmt.Errorf("create settings for user %s: %w", userID, err)
		}
	}

	builder := s.client.NotificationSettings.UpdateOne(row)
	if upd.EmailNotifications != nil {
		builder.SetEmailNotifications(*upd.EmailNotifications)
	}
	if upd.PushNotifications != nil {
		builder.SetPushNotifications(*upd.PushNotifications)
	}
	if upd.EventReminders != nil {
		builder.SetEventReminders(*upd.EventReminders)
	}
	if upd.MarketingEmails != nil {
		builder.SetMarketingEmails(*upd.MarketingEmails)
	}
	if upd.ReminderLeadMinutes != nil {
		builder.SetReminderLeadMinutes(*upd.ReminderLeadMinutes)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return notification.Preferences{}, fmt.Errorf("update settings for user %s: %w", userID, err)
	}

	logger.Debug("notification settings updated", zap.String("user_id", userID))
	return notification.Preferences{
		EmailNotifications:  saved.EmailNotifications,
		PushNotifications:   saved.PushNotifications,
		EventReminders:      saved.EventReminders,
		MarketingEmails:     saved.MarketingEmails,
		ReminderLeadMinutes: saved.ReminderLeadMinutes,
	}, nil
}

func toEntCategory(c string) (entnotification.Category, error) {
	switch c {
	case notification.CategoryEventReminder:
		return entnotification.CategoryEVENT_REMINDER, nil
	case notification.CategoryEventCreated:
		return entnotification.CategoryEVENT_CREATED, nil
	case notification.CategoryEventUpdated:
		return entnotification.CategoryEVENT_UPDATED, nil
	case notification.CategoryEventDeleted:
		return entnotification.CategoryEVENT_DELETED, nil
	case notification.CategorySystemMessage:
		return entnotification.CategorySYSTEM_MESSAGE, nil
	case notification.CategoryMarketing:
		return entnotification.CategoryMARKETING, nil
	default:
		return "", fmt.Errorf("unknown notification category: %s", c)
	}
}

var (
	_ notification.Store     = (*NotificationService)(nil)
	_ notification.Directory = (*NotificationService)(nil)
)
