package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/api/middleware"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"
)

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid register payload"))
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	// Welcome message rides the normal notification pipeline, so the new
	// account gets an inbox entry and an email. Best-effort, off the
	// request path: registration must not wait on dispatch.
	if s.notifier != nil && s.workers != nil {
		userID := user.ID
		err := s.workers.SubmitDetached("general", func(ctx context.Context) {
			if err := s.notifier.SystemMessage(ctx, userID,
				"Welcome to PlanWise",
				"Your account is ready. Create your first event to get started.",
			); err != nil {
				logger.Warn("welcome notification failed",
					zap.String("user_id", userID),
					zap.Error(err),
				)
			}
		})
		if err != nil {
			logger.Warn("welcome notification task rejected",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Email)
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.CodeInternal, "failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid login payload"))
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login failed", zap.String("email", req.Email))
		c.Error(err)
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Email)
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.CodeInternal, "failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	})
}

// GetCurrentUser handles GET /api/v1/auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.Error(apperrors.Unauthorized(apperrors.CodeUnauthorized, "not authenticated"))
		return
	}

	user, err := s.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
