package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planwise.io/planwise/internal/api/middleware"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/service"
)

// ListNotifications handles GET /api/v1/notifications?page=1&per_page=10.
func (s *Server) ListNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = defaultPagination(page, perPage)

	items, total, err := s.inbox.List(c.Request.Context(), userID, page, perPage)
	if err != nil {
		c.Error(err)
		return
	}

	resp := NotificationListResponse{
		Items:      make([]NotificationResponse, 0, len(items)),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}
	for _, n := range items {
		resp.Items = append(resp.Items, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	count, err := s.inbox.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	n, err := s.inbox.MarkRead(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toNotificationResponse(n))
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	updated, err := s.inbox.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	if err := s.inbox.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetNotificationSettings handles GET /api/v1/notifications/settings.
func (s *Server) GetNotificationSettings(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	prefs, err := s.inbox.Preferences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(prefs))
}

// UpdateNotificationSettings handles PUT /api/v1/notifications/settings.
func (s *Server) UpdateNotificationSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid settings payload"))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	prefs, err := s.inbox.UpdateSettings(c.Request.Context(), userID, service.SettingsUpdate{
		EmailNotifications:  req.EmailNotifications,
		PushNotifications:   req.PushNotifications,
		EventReminders:      req.EventReminders,
		MarketingEmails:     req.MarketingEmails,
		ReminderLeadMinutes: req.ReminderLeadMinutes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toSettingsResponse(prefs))
}

// SendTestNotification handles POST /api/v1/notifications/test. It pushes a
// SYSTEM_MESSAGE through the full pipeline so users can verify their
// delivery settings end to end.
func (s *Server) SendTestNotification(c *gin.Context) {
	var req TestNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid test payload"))
		return
	}
	if req.Title == "" {
		req.Title = "Test Notification"
	}
	if req.Message == "" {
		req.Message = "This is a test notification from PlanWise."
	}

	userID := middleware.GetUserID(c.Request.Context())
	if err := s.notifier.SystemMessage(c.Request.Context(), userID, req.Title, req.Message); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
