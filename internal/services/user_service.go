package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/repositories"
	"github.com/school_portal/pkg/utils"
)

// ErrUserNotFound 表示用户未找到的错误
var ErrUserNotFound = errors.New("用户未找到")

// ErrNoUpdateFields 表示更新请求中没有任何有效字段
var ErrNoUpdateFields = errors.New("没有提供任何有效的更新字段")

const (
	// defaultPassword 管理端新增用户时的初始密码（入库前会被哈希）
	defaultPassword = "12345"
	// fieldPlaceholder 可选字段缺省时写入的占位值
	fieldPlaceholder = "N/A"
)

// UserService 定义了用户档案与管理操作的业务接口
type UserService interface {
	GetProfileByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	CreateUser(user *models.User, password string) (*models.User, error)
	UpdateUser(id int64, payload models.UpdateUserPayload) (*models.User, error)
	SoftDeleteUser(id int64) (*models.User, error)
}

// userService 是 UserService 的实现
type userService struct {
	repo repositories.UserRepository
}

// NewUserService 创建一个新的 userService 实例
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetProfileByEmail 根据Token中的邮箱返回调用者自己的档案。
// Token签发后行被删除的情况下返回 ErrUserNotFound。
func (s *userService) GetProfileByEmail(email string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsers 返回全部用户，按创建时间倒序。
// 策略决定：包含软删除（isActive=false）的行，由前端展示状态标记。
func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAllUsers()
}

// CreateUser 处理管理端新增用户：必填字段由 handler 绑定校验，
// 这里补占位默认值、默认出生日期和初始密码，然后入库。
func (s *userService) CreateUser(user *models.User, password string) (*models.User, error) {
	_, err := s.repo.GetUserByEmail(user.Email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	if !models.IsValidRole(user.Role) {
		return nil, ErrInvalidRole
	}

	// 未提供密码时使用初始密码
	if password == "" {
		password = defaultPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hashed)

	// 可选字段缺省时填充占位值，保持与既有数据的一致性
	placeholder := fieldPlaceholder
	if user.Designation == nil {
		p := placeholder
		user.Designation = &p
	}
	if user.Department == nil {
		p := placeholder
		user.Department = &p
	}
	if user.PhoneNumber == nil {
		p := placeholder
		user.PhoneNumber = &p
	}
	if user.Address == nil {
		p := placeholder
		user.Address = &p
	}
	if user.DateOfBirth == nil {
		now := time.Now()
		user.DateOfBirth = &now
	}
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

// UpdateUser 处理部分更新：payload 中为 nil 的字段保持不变，
// 只有提供了新密码时才重新哈希并覆盖 password_hash。
func (s *userService) UpdateUser(id int64, payload models.UpdateUserPayload) (*models.User, error) {
	// 首先，确保用户存在
	if _, err := s.repo.GetUserByID(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Role != nil {
		if !models.IsValidRole(*payload.Role) {
			return nil, ErrInvalidRole
		}
		updates["role"] = *payload.Role
	}
	if payload.Gender != nil {
		updates["gender"] = *payload.Gender
	}
	if payload.Designation != nil {
		updates["designation"] = *payload.Designation
	}
	if payload.Department != nil {
		updates["department"] = *payload.Department
	}
	if payload.PhoneNumber != nil {
		updates["phone_number"] = *payload.PhoneNumber
	}
	if payload.Address != nil {
		updates["address"] = *payload.Address
	}
	if payload.ProfilePicURL != nil {
		updates["profile_pic_url"] = *payload.ProfilePicURL
	}
	if payload.Age != nil {
		updates["age"] = *payload.Age
	}
	if payload.DateOfBirth != nil && *payload.DateOfBirth != "" {
		dob, err := utils.ParseDate(*payload.DateOfBirth)
		if err != nil {
			return nil, errors.New("无效的出生日期格式: " + *payload.DateOfBirth)
		}
		updates["date_of_birth"] = &dob
	}
	if payload.Password != nil && *payload.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hashed)
	}

	if len(updates) == 0 {
		return nil, ErrNoUpdateFields
	}
	updates["updated_date"] = time.Now()

	updated, err := s.repo.UpdateUserFields(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, ErrEmailAlreadyRegistered
		}
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return updated, nil
}

// SoftDeleteUser 将用户标记为停用（isActive=false）并记录删除时间，
// 行不会被物理删除，之后仍然可以被列表查询到。
func (s *userService) SoftDeleteUser(id int64) (*models.User, error) {
	if _, err := s.repo.GetUserByID(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_active":    false,
		"deleted_date": &now,
	}

	deleted, err := s.repo.UpdateUserFields(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return deleted, nil
}
