package services

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/school_portal/configs"
	"github.com/school_portal/internal/auth"
	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/repositories"
)

const testJWTSecret = "unit-test-secret"

func TestMain(m *testing.M) {
	// 配置是进程级单例，签发Token需要密钥
	os.Setenv("JWT_SECRET_KEY", testJWTSecret)
	configs.LoadConfig()
	os.Exit(m.Run())
}

// newTestRepo 返回一个基于内存SQLite的用户仓库，每个测试用例独立一份
func newTestRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewGormUserRepository(db)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo)

	created, err := svc.Register(&models.User{
		Name:  "Alice",
		Email: "a@x.com",
	}, "pw1")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, created.Role, "角色缺省应为 Student")
	require.True(t, created.IsActive)
	require.NotEqual(t, "pw1", created.PasswordHash, "明文密码不能落库")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw1")))

	result, err := svc.Login("a@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, result.Role)
	require.NotEmpty(t, result.Token)

	// Token 中的声明应与存储的用户一致，有效期为签发时间+2小时
	claims := &auth.Claims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, models.RoleStudent, claims.Role)
	require.Equal(t, "Alice", claims.Name)
	require.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo)

	_, err := svc.Register(&models.User{Name: "Alice", Email: "a@x.com"}, "pw1")
	require.NoError(t, err)

	_, err = svc.Register(&models.User{Name: "Another Alice", Email: "a@x.com"}, "pw2")
	require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo)

	_, err := svc.Register(&models.User{Name: "Bob", Email: "b@x.com", Role: "Admin"}, "pw")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_LoginFailures(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo)

	_, err := svc.Register(&models.User{Name: "Alice", Email: "a@x.com"}, "pw1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "a@x.com", password: "pw2"},
		{name: "unknown email", email: "nobody@x.com", password: "pw1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(tc.email, tc.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
