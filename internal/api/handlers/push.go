package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planwise.io/planwise/internal/api/middleware"
	apperrors "planwise.io/planwise/internal/pkg/errors"
)

// GetPushPublicKey handles GET /api/v1/push/public-key. Clients need the VAPID
// public key before they can create a browser subscription.
func (s *Server) GetPushPublicKey(c *gin.Context) {
	if !s.pushCfg.Configured() {
		c.Error(apperrors.NotFound(apperrors.CodeSubscriptionNotFound, "web push is not configured"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_key": s.pushCfg.VAPIDPublicKey})
}

// Subscribe handles POST /api/v1/push/subscriptions.
func (s *Server) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid subscription payload"))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	sub, err := s.push.Subscribe(c.Request.Context(), userID, req.Endpoint, req.Keys.P256dh, req.Keys.Auth)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

// Unsubscribe handles DELETE /api/v1/push/subscriptions.
func (s *Server) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid unsubscribe payload"))
		return
	}

	userID := middleware.GetUserID(c.Request.Context())
	if err := s.push.Unsubscribe(c.Request.Context(), userID, req.Endpoint); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
