package leave

import (
	"go-leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouteConfig struct {
	AuthMiddleware gin.HandlerFunc
	RBACService    middleware.RBACService
	Redis          *redis.Client
	HRDepartment   string
	Logger         *zap.Logger
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, cfg RouteConfig) {
	leaves := r.Group("/leaves")
	leaves.Use(cfg.AuthMiddleware)
	leaves.Use(middleware.ContextLogger(cfg.Logger))
	{
		leaves.GET("/mine",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(cfg.RBACService, "leave", "read_own"),
			handler.ListMine,
		)

		leaves.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(cfg.RBACService, "leave", "create"),
			middleware.Idempotency(cfg.Redis),
			handler.Submit,
		)
	}

	sup := r.Group("/supervisor/leaves")
	sup.Use(cfg.AuthMiddleware)
	sup.Use(middleware.ContextLogger(cfg.Logger))
	sup.Use(middleware.RBACAuthorize(cfg.RBACService, "leave", "supervise"))
	{
		sup.GET("", middleware.RateLimitByUser(3, 10), handler.SupervisorDashboard)
		sup.POST("/:id/decision", middleware.RateLimitByUser(1, 5), handler.SupervisorDecide)
	}

	hr := r.Group("/hr/leaves")
	hr.Use(cfg.AuthMiddleware)
	hr.Use(middleware.ContextLogger(cfg.Logger))
	hr.Use(middleware.RequireHRStaff(cfg.HRDepartment))
	{
		hr.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(cfg.RBACService, "leave", "hr_review"),
			handler.ListForHR,
		)
		hr.POST("/:id/decision",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(cfg.RBACService, "leave", "hr_review"),
			handler.HRDecide,
		)
		hr.GET("/export.pdf",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RBACAuthorize(cfg.RBACService, "leave", "export"),
			handler.ExportApproved,
		)
	}
}
