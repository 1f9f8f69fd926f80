// Package handlers implements the PlanWise REST API.
//
// Handlers bind JSON, delegate to the service layer, and translate
// service errors through the ErrorHandler middleware via c.Error().
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"planwise.io/planwise/internal/api/middleware"
	"planwise.io/planwise/internal/config"
	"planwise.io/planwise/internal/notification"
	"planwise.io/planwise/internal/pkg/worker"
	"planwise.io/planwise/internal/service"
)

// Server implements all API handlers.
type Server struct {
	pool     *pgxpool.Pool
	workers  *worker.Pools
	jwtCfg   middleware.JWTConfig
	pushCfg  config.PushConfig
	users    *service.UserService
	events   *service.EventService
	inbox    *service.NotificationService
	push     *service.PushService
	notifier *notification.Triggers
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	Pool     *pgxpool.Pool
	Workers  *worker.Pools
	JWTCfg   middleware.JWTConfig
	PushCfg  config.PushConfig
	Users    *service.UserService
	Events   *service.EventService
	Inbox    *service.NotificationService
	Push     *service.PushService
	Notifier *notification.Triggers
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		pool:     deps.Pool,
		workers:  deps.Workers,
		jwtCfg:   deps.JWTCfg,
		pushCfg:  deps.PushCfg,
		users:    deps.Users,
		events:   deps.Events,
		inbox:    deps.Inbox,
		push:     deps.Push,
		notifier: deps.Notifier,
	}
}

// RegisterRoutes wires all API routes onto the engine. authMW guards every
// route that requires a valid token.
func (s *Server) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.GET("/health/live", s.GetLiveness)
	r.GET("/health/ready", s.GetReadiness)

	api := r.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/push/public-key", s.GetPushPublicKey)

	auth := api.Group("", authMW)

	auth.GET("/auth/me", s.GetCurrentUser)

	auth.POST("/events", s.CreateEvent)
	auth.GET("/events", s.ListEvents)
	auth.GET("/events/upcoming", s.GetUpcomingEvents)
	auth.GET("/events/:id", s.GetEvent)
	auth.PUT("/events/:id", s.UpdateEvent)
	auth.DELETE("/events/:id", s.DeleteEvent)

	auth.GET("/notifications", s.ListNotifications)
	auth.GET("/notifications/unread-count", s.GetUnreadCount)
	auth.PUT("/notifications/:id/read", s.MarkNotificationRead)
	auth.PUT("/notifications/read-all", s.MarkAllNotificationsRead)
	auth.DELETE("/notifications/:id", s.DeleteNotification)
	auth.GET("/notifications/settings", s.GetNotificationSettings)
	auth.PUT("/notifications/settings", s.UpdateNotificationSettings)
	auth.POST("/notifications/test", s.SendTestNotification)

	auth.POST("/push/subscriptions", s.Subscribe)
	auth.DELETE("/push/subscriptions", s.Unsubscribe)
}
