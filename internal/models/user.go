package models

import (
	"time"
)

// 用户角色常量
const (
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
)

// User 对应于数据库中的 users 表
// 软删除通过 is_active + deleted_date 两列表达，被删除的行仍然可查询，
// 因此这里不使用 gorm.DeletedAt（它会把软删除行从查询中隐藏掉）。
type User struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string     `json:"name" gorm:"column:name;not null;size:255"`
	Email         string     `json:"email" gorm:"column:email;unique;not null;size:255"`
	PasswordHash  string     `json:"-" gorm:"column:password_hash;not null;size:255"` // 密码哈希不通过JSON暴露
	Role          string     `json:"role" gorm:"column:role;not null;default:'Student';size:50"` // 'Student' 或 'Teacher'
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" gorm:"column:date_of_birth;type:date"`
	Age           *int       `json:"age,omitempty" gorm:"column:age"`
	Gender        *string    `json:"gender,omitempty" gorm:"column:gender;size:50"`
	Designation   *string    `json:"designation,omitempty" gorm:"column:designation;size:255"`
	Department    *string    `json:"department,omitempty" gorm:"column:department;size:255"`
	PhoneNumber   *string    `json:"phoneNumber,omitempty" gorm:"column:phone_number;size:50"`
	Address       *string    `json:"address,omitempty" gorm:"column:address;size:255"`
	ProfilePicURL *string    `json:"profilePicUrl,omitempty" gorm:"column:profile_pic_url;size:512"`
	IsActive      bool       `json:"isActive" gorm:"column:is_active;not null;default:true"`
	CreatedDate   time.Time  `json:"createdDate" gorm:"column:created_date;not null;autoCreateTime"`
	UpdatedDate   *time.Time `json:"updatedDate,omitempty" gorm:"column:updated_date"`
	DeletedDate   *time.Time `json:"deletedDate,omitempty" gorm:"column:deleted_date"`
}

// TableName 指定 User 结构体对应的数据库表名
func (User) TableName() string {
	return "users"
}

// IsValidRole 检查角色字符串是否为合法角色
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// UpdateUserPayload 定义了更新用户的请求体。
// 全部为指针字段：nil 表示该字段未提供、保持不变。
type UpdateUserPayload struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Password      *string `json:"password,omitempty" binding:"omitempty,min=1"`
	Role          *string `json:"role,omitempty" binding:"omitempty,oneof=Student Teacher"`
	Gender        *string `json:"gender,omitempty" binding:"omitempty,max=50"`
	Designation   *string `json:"designation,omitempty" binding:"omitempty,max=255"`
	Department    *string `json:"department,omitempty" binding:"omitempty,max=255"`
	PhoneNumber   *string `json:"phoneNumber,omitempty" binding:"omitempty,max=50"`
	Address       *string `json:"address,omitempty" binding:"omitempty,max=255"`
	ProfilePicURL *string `json:"profilePicUrl,omitempty" binding:"omitempty,max=512"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty" binding:"omitempty"` // YYYY-MM-DD
	Age           *int    `json:"age,omitempty" binding:"omitempty,min=0"`
}
