package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/school_portal/internal/auth"
	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/repositories"
)

// ErrEmailAlreadyRegistered 表示注册邮箱已被占用
var ErrEmailAlreadyRegistered = errors.New("该邮箱已被注册")

// ErrInvalidCredentials 表示邮箱或密码不正确。
// 邮箱不存在和密码错误返回同一个错误，避免向调用方泄露账号是否存在。
var ErrInvalidCredentials = errors.New("无效的邮箱或密码")

// ErrInvalidRole 表示角色不在允许的取值范围内
var ErrInvalidRole = errors.New("无效的角色，必须是 Student 或 Teacher")

// LoginResult 是登录成功后返回给调用方的数据
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// AuthService 定义了注册与登录的业务接口
type AuthService interface {
	Register(user *models.User, password string) (*models.User, error)
	Login(email, password string) (*LoginResult, error)
}

// authService 是 AuthService 的实现
type authService struct {
	repo repositories.UserRepository
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(repo repositories.UserRepository) AuthService {
	return &authService{repo: repo}
}

// Register 处理用户注册：检查邮箱占用，补默认角色，哈希密码后入库。
// 注册成功不签发Token，调用方需要随后单独登录。
func (s *authService) Register(user *models.User, password string) (*models.User, error) {
	// 预检查给出友好的错误；并发下的兜底是数据库唯一约束（仓库层映射为 ErrEmailExists）
	_, err := s.repo.GetUserByEmail(user.Email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	if !models.IsValidRole(user.Role) {
		return nil, ErrInvalidRole
	}

	// 密码使用 bcrypt（带盐的自适应哈希）存储，明文不落库
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashed)
	user.IsActive = true

	created, err := s.repo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return created, nil
}

// Login 校验凭证并签发Token
func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Role: user.Role}, nil
}
