package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/school_portal/internal/auth"
	"github.com/school_portal/internal/handlers"
	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/repositories"
	"github.com/school_portal/internal/services"
	"github.com/school_portal/pkg/db"
)

// SetupUserRoutes 设置用户档案与管理相关路由。
// 所有路由都要求有效的 Token；除 /me 外仅教师角色可访问。
func SetupUserRoutes(router *gin.RouterGroup) {
	userRepo := repositories.NewGormUserRepository(db.GetDB())
	userService := services.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService)

	userGroup := router.Group("/user")
	userGroup.Use(auth.JWTMiddleware())
	{
		// GET /api/user/me - 学生和教师都可以查看自己的档案
		userGroup.GET("/me", auth.RequireRoles(models.RoleStudent, models.RoleTeacher), userHandler.GetMyProfile)

		// 以下为教师专用的管理操作
		userGroup.GET("/all", auth.RequireRoles(models.RoleTeacher), userHandler.GetAllUsers)
		userGroup.POST("", auth.RequireRoles(models.RoleTeacher), userHandler.CreateUser)
		userGroup.PUT("/:id", auth.RequireRoles(models.RoleTeacher), userHandler.UpdateUser)
		userGroup.DELETE("/:id", auth.RequireRoles(models.RoleTeacher), userHandler.DeleteUser)
	}
}
