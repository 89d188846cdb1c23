package report

import (
	"go-leaveflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(authMiddleware, middleware.ContextLogger(logger))
	{
		reports.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "report", "create"),
			handler.Submit,
		)
		reports.GET("/mine",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "report", "create"),
			handler.ListMine,
		)
	}

	team := r.Group("/supervisor/reports")
	team.Use(authMiddleware, middleware.ContextLogger(logger))
	team.GET("",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "report", "read_team"),
		handler.ListForSupervisor,
	)
}
