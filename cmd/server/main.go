package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/school_portal/configs"
	"github.com/school_portal/internal/routes"
	"github.com/school_portal/pkg/db"
)

// @title School Portal API
// @version 1.0
// @description 学校门户后端：用户注册、登录与档案管理，角色分为 Student 和 Teacher
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 先加载 .env（若存在），再读取应用配置
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables")
	}
	configs.LoadConfig()

	// 初始化数据库连接
	db.InitDB()
	defer db.CloseDB() // 确保在 main 函数退出时关闭数据库连接

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(router)

	port := configs.AppConfig.ServerPort
	log.Infof("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
