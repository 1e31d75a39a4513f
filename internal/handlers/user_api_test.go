package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/school_portal/configs"
	"github.com/school_portal/internal/auth"
	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/repositories"
	"github.com/school_portal/internal/services"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET_KEY", "unit-test-secret")
	configs.LoadConfig()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter 用内存SQLite搭一个完整的 API 路由，与生产路由结构一致
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	repo := repositories.NewGormUserRepository(db)
	authHandler := NewAuthHandler(services.NewAuthService(repo))
	userHandler := NewUserHandler(services.NewUserService(repo))

	router := gin.New()
	api := router.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	userGroup := api.Group("/user")
	userGroup.Use(auth.JWTMiddleware())
	userGroup.GET("/me", auth.RequireRoles(models.RoleStudent, models.RoleTeacher), userHandler.GetMyProfile)
	userGroup.GET("/all", auth.RequireRoles(models.RoleTeacher), userHandler.GetAllUsers)
	userGroup.POST("", auth.RequireRoles(models.RoleTeacher), userHandler.CreateUser)
	userGroup.PUT("/:id", auth.RequireRoles(models.RoleTeacher), userHandler.UpdateUser)
	userGroup.DELETE("/:id", auth.RequireRoles(models.RoleTeacher), userHandler.DeleteUser)
	return router
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin 注册一个用户并登录，返回Token
func registerAndLogin(t *testing.T, router *gin.Engine, name, email, password, role string) string {
	t.Helper()
	payload := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q`, name, email, password)
	if role != "" {
		payload += fmt.Sprintf(`,"role":%q`, role)
	}
	payload += "}"
	w := doJSON(router, http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/auth/login", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	// 注册成功后登录返回 Token 与角色（缺省 Student）
	w := doJSON(router, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"a@x.com","password":"pw1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"pw1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"Student"`)

	// 错误密码 401
	w = doJSON(router, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 重复邮箱注册 409
	w = doJSON(router, http.MethodPost, "/api/auth/register",
		`{"name":"Alice2","email":"a@x.com","password":"pw2"}`, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// 缺少必填字段 400
	w = doJSON(router, http.MethodPost, "/api/auth/register",
		`{"email":"b@x.com"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMyProfileHidesPasswordHash(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "Alice", "a@x.com", "pw1", "")

	w := doJSON(router, http.MethodGet, "/api/user/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	require.NotContains(t, w.Body.String(), "passwordHash")
	require.NotContains(t, w.Body.String(), "password_hash")
}

func TestRoleGating(t *testing.T) {
	router := newTestRouter(t)
	studentToken := registerAndLogin(t, router, "Alice", "a@x.com", "pw1", "")
	teacherToken := registerAndLogin(t, router, "Tina", "t@x.com", "pw2", "Teacher")

	// 学生不能访问管理接口
	w := doJSON(router, http.MethodGet, "/api/user/all", "", studentToken)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(router, http.MethodPost, "/api/user",
		`{"name":"X","email":"x@x.com","role":"Student","gender":"Male"}`, studentToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	// 教师可以拿到全员列表
	w = doJSON(router, http.MethodGet, "/api/user/all", "", teacherToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"a@x.com"`)
	require.Contains(t, w.Body.String(), `"t@x.com"`)

	// 无Token 401
	w = doJSON(router, http.MethodGet, "/api/user/all", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminUserLifecycle(t *testing.T) {
	router := newTestRouter(t)
	teacherToken := registerAndLogin(t, router, "Tina", "t@x.com", "pw2", "Teacher")

	// 新增用户（缺省密码与占位字段由服务层填充）
	w := doJSON(router, http.MethodPost, "/api/user",
		`{"name":"Carol","email":"c@x.com","role":"Student","gender":"Female"}`, teacherToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var createResp struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	id := createResp.Data.ID
	require.NotZero(t, id)
	require.Equal(t, "N/A", *createResp.Data.Designation)

	// 缺必填字段 400
	w = doJSON(router, http.MethodPost, "/api/user",
		`{"name":"NoRole","email":"n@x.com"}`, teacherToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 重复邮箱 409
	w = doJSON(router, http.MethodPost, "/api/user",
		`{"name":"Carol2","email":"c@x.com","role":"Student","gender":"Female"}`, teacherToken)
	require.Equal(t, http.StatusConflict, w.Code)

	// 部分更新：只改 name
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/user/%d", id),
		`{"name":"Caroline"}`, teacherToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Caroline"`)
	require.Contains(t, w.Body.String(), `"email":"c@x.com"`)

	// 不存在的 id 404
	w = doJSON(router, http.MethodPut, "/api/user/9999", `{"name":"X"}`, teacherToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	// 软删除：行保留，isActive=false 且记录删除时间
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), "", teacherToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/user/all", "", teacherToken)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	var found *models.User
	for i := range listResp.Data {
		if listResp.Data[i].ID == id {
			found = &listResp.Data[i]
		}
	}
	require.NotNil(t, found, "软删除的行应仍然出现在列表里")
	require.False(t, found.IsActive)
	require.NotNil(t, found.DeletedDate)

	// 删除不存在的 id 404
	w = doJSON(router, http.MethodDelete, "/api/user/9999", "", teacherToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}
