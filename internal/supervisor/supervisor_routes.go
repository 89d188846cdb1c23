package supervisor

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
	supervisors := r.Group("/supervisors")
	supervisors.Use(authMiddleware)
	supervisors.Use(middleware.ContextLogger(logger))
	supervisors.Use(middleware.RBACAuthorize(rbacService, "supervisor", "manage"))
	{
		supervisors.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		supervisors.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		supervisors.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
