package repositories

import (
	"errors"
	"strings"

	"github.com/school_portal/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到（仓库层通用错误）
var ErrRecordNotFound = errors.New("记录未找到")

// ErrEmailExists 表示邮箱已被占用
var ErrEmailExists = errors.New("邮箱已存在")

// UserRepository 定义了用户数据仓库的接口
type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUserFields(id int64, updates map[string]interface{}) (*models.User, error)
}

// gormUserRepository 是 UserRepository 的 GORM 实现
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository 创建一个新的 gormUserRepository 实例
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// isUniqueEmailViolation 判断底层数据库错误是否为 users.email 的唯一约束冲突。
// 唯一性最终由数据库层保证，"先查再插"只是为了给出更友好的错误，
// 并发下仍可能两边同时通过检查，此处兜底把约束冲突映射为 ErrEmailExists。
func isUniqueEmailViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique constraint") && !strings.Contains(msg, "duplicate key") {
		return false
	}
	return strings.Contains(msg, "users.email") || strings.Contains(msg, "email")
}

// CreateUser 在数据库中创建一个新的用户记录
func (r *gormUserRepository) CreateUser(user *models.User) (*models.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueEmailViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail 根据邮箱查找用户。包含已被软删除（is_active=false）的行，
// 因为邮箱唯一性约束覆盖所有行。
func (r *gormUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 根据主键查找用户
func (r *gormUserRepository) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAllUsers 返回全部用户记录，按创建时间倒序。
// 包含软删除的行，由调用方根据 isActive 展示状态。
func (r *gormUserRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_date desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserFields 按列更新用户记录，只更新 updates 中出现的列，
// 更新完成后返回最新的完整记录。
func (r *gormUserRepository) UpdateUserFields(id int64, updates map[string]interface{}) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueEmailViolation(result.Error) {
			return nil, ErrEmailExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
