package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/school_portal/configs"
	_ "github.com/school_portal/docs" // swagger 文档注册
)

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine) {
	// 浏览器前端跨域：只放行配置中的前端地址，允许携带 Authorization 头
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{configs.AppConfig.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 前端静态页面（登录、注册、仪表盘）
	router.StaticFile("/", "./web/static/login.html")
	router.StaticFile("/register", "./web/static/register.html")
	router.StaticFile("/dashboard", "./web/static/dashboard.html")
	router.Static("/static", "./web/static")

	// Swagger API 文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	SetupAuthRoutes(api) // 注册认证路由
	SetupUserRoutes(api) // 注册用户路由
}
