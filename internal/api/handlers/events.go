package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/api/middleware"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/service"
)

// CreateEvent handles POST /api/v1/events.
func (s *Server) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid event payload"))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	ev, err := s.events.CreateEvent(c.Request.Context(), userID, service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if !s.notifyEventChange(c, func() error {
		return s.notifier.EventCreated(c.Request.Context(), userID, ev.Title)
	}) {
		return
	}

	c.JSON(http.StatusCreated, toEventResponse(ev))
}

// ListEvents handles GET /api/v1/events?page=1&per_page=10.
func (s *Server) ListEvents(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	page, perPage = defaultPagination(page, perPage)

	events, total, err := s.events.ListEvents(c.Request.Context(), userID, page, perPage)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, EventListResponse{
		Items:      toEventResponses(events),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	})
}

// GetUpcomingEvents handles GET /api/v1/events/upcoming?days=7.
func (s *Server) GetUpcomingEvents(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	events, err := s.events.UpcomingEvents(c.Request.Context(), userID, days, time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toEventResponses(events))
}

// GetEvent handles GET /api/v1/events/:id.
func (s *Server) GetEvent(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	ev, err := s.events.GetEvent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toEventResponse(ev))
}

// UpdateEvent handles PUT /api/v1/events/:id.
func (s *Server) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid event payload"))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	ev, err := s.events.UpdateEvent(c.Request.Context(), userID, c.Param("id"), service.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	if !s.notifyEventChange(c, func() error {
		return s.notifier.EventUpdated(c.Request.Context(), userID, ev.Title)
	}) {
		return
	}

	c.JSON(http.StatusOK, toEventResponse(ev))
}

// DeleteEvent handles DELETE /api/v1/events/:id.
func (s *Server) DeleteEvent(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())

	ev, err := s.events.DeleteEvent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	if !s.notifyEventChange(c, func() error {
		return s.notifier.EventDeleted(c.Request.Context(), userID, ev.Title)
	}) {
		return
	}

	c.Status(http.StatusNoContent)
}

// notifyEventChange runs a lifecycle notification trigger and reports
// whether the handler should proceed. The notification row is part of the
// mutation's contract, so a failed dispatch fails the request even though
// the event write itself already committed.
func (s *Server) notifyEventChange(c *gin.Context, fire func() error) bool {
	if s.notifier == nil {
		return true
	}
	if err := fire(); err != nil {
		logger.Warn("event lifecycle notification failed",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.Error(err),
		)
		c.Error(err)
		return false
	}
	return true
}
