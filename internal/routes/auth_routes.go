package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/school_portal/internal/handlers"
	"github.com/school_portal/internal/repositories"
	"github.com/school_portal/internal/services"
	"github.com/school_portal/pkg/db"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup) {
	userRepo := repositories.NewGormUserRepository(db.GetDB())
	authService := services.NewAuthService(userRepo)
	authHandler := handlers.NewAuthHandler(authService)

	// 公共认证路由组，注册和登录不需要 Token
	authGroup := router.Group("/auth")
	{
		// POST /api/auth/register
		authGroup.POST("/register", authHandler.Register)
		// POST /api/auth/login
		authGroup.POST("/login", authHandler.Login)
	}
}
