package configs

import (
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret       string
	JWTIssuer       string
	JWTAudience     string
	ServerPort      string
	FrontendBaseURL string
}

const (
	envJWTSecretKey        = "JWT_SECRET_KEY"        // JWT签名密钥的环境变量名，无默认值
	defaultJWTIssuer       = "school_portal"         // 默认的Token签发者
	envJWTIssuerKey        = "JWT_ISSUER"            // Token签发者环境变量名
	defaultJWTAudience     = "school_portal_web"     // 默认的Token受众
	envJWTAudienceKey      = "JWT_AUDIENCE"          // Token受众环境变量名
	defaultServerPort      = "8080"                  // Default server port.
	envServerPortKey       = "SERVER_PORT"           // Environment variable name for the server port.
	defaultFrontendBaseURL = "http://localhost:3000" // 默认前端基础URL（用于CORS）
	envFrontendBaseURLKey  = "FRONTEND_BASE_URL"     // 前端基础URL环境变量名
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
// JWT签名密钥没有默认值：缺失时直接终止启动，避免用不安全的默认密钥签发Token。
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			log.Fatalf("环境变量 %s 未设置。JWT签名密钥是必需配置，应用无法启动。", envJWTSecretKey)
		}

		jwtIssuer := os.Getenv(envJWTIssuerKey)
		if jwtIssuer == "" {
			jwtIssuer = defaultJWTIssuer
		}

		jwtAudience := os.Getenv(envJWTAudienceKey)
		if jwtAudience == "" {
			jwtAudience = defaultJWTAudience
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		frontendBaseURL := os.Getenv(envFrontendBaseURLKey)
		if frontendBaseURL == "" {
			frontendBaseURL = defaultFrontendBaseURL
			log.Printf("信息: %s 环境变量未设置。正在使用默认前端URL %s。这在生产环境中可能不正确。", envFrontendBaseURLKey, defaultFrontendBaseURL)
		}

		AppConfig = Configuration{
			JWTSecret:       jwtSecret,
			JWTIssuer:       jwtIssuer,
			JWTAudience:     jwtAudience,
			ServerPort:      serverPort,
			FrontendBaseURL: frontendBaseURL,
		}

		log.Println("应用配置已加载。")
	})
}
