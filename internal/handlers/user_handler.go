package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/services"
	"github.com/school_portal/pkg/utils"
)

// UserHandler 封装了用户档案与管理相关的 HTTP 处理逻辑
type UserHandler struct {
	service services.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserPayload 定义了管理端新增用户请求的 JSON 结构体。
// name/email/role/gender 为必填；未提供密码时服务层使用初始密码。
type CreateUserPayload struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Email         string  `json:"email" binding:"required,email,max=255"`
	Role          string  `json:"role" binding:"required,oneof=Student Teacher"`
	Gender        string  `json:"gender" binding:"required,max=50"`
	Password      *string `json:"password,omitempty" binding:"omitempty,min=1"`
	Designation   *string `json:"designation,omitempty" binding:"omitempty,max=255"`
	Department    *string `json:"department,omitempty" binding:"omitempty,max=255"`
	PhoneNumber   *string `json:"phoneNumber,omitempty" binding:"omitempty,max=50"`
	Address       *string `json:"address,omitempty" binding:"omitempty,max=255"`
	ProfilePicURL *string `json:"profilePicUrl,omitempty" binding:"omitempty,max=512"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty" binding:"omitempty"` // YYYY-MM-DD
	Age           *int    `json:"age,omitempty" binding:"omitempty,min=0"`
}

// GetMyProfile godoc
// @Summary 获取当前登录用户的档案
// @Description 根据 Token 中的邮箱返回调用者自己的信息，密码哈希不会出现在响应中
// @Tags users
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=models.User} "用户档案"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /user/me [get]
// @Security BearerAuth
func (h *UserHandler) GetMyProfile(c *gin.Context) {
	email := c.GetString("email")

	user, err := h.service.GetProfileByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondNotFoundError(c, "用户")
		} else {
			utils.RespondInternalServerError(c, "获取用户档案失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, user, "用户档案获取成功")
}

// GetAllUsers godoc
// @Summary 获取全部用户列表
// @Description 返回所有用户（包含已停用的），按创建时间倒序。仅教师可用。
// @Tags users
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.User} "用户列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 403 {object} utils.APIErrorResponse "当前角色无权访问"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /user/all [get]
// @Security BearerAuth
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		utils.RespondInternalServerError(c, "获取用户列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, users, "用户列表获取成功")
}

// CreateUser godoc
// @Summary 新增一个用户
// @Description 管理端新增用户。未提供密码时使用初始密码 12345，可选字段缺省填充 N/A。仅教师可用。
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserPayload true "用户信息"
// @Success 201 {object} utils.SuccessResponse{data=models.User} "创建成功的用户对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 403 {object} utils.APIErrorResponse "当前角色无权访问"
// @Failure 409 {object} utils.APIErrorResponse "邮箱已存在"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /user [post]
// @Security BearerAuth
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	gender := payload.Gender
	userToCreate := &models.User{
		Name:          payload.Name,
		Email:         payload.Email,
		Role:          payload.Role,
		Gender:        &gender,
		Designation:   payload.Designation,
		Department:    payload.Department,
		PhoneNumber:   payload.PhoneNumber,
		Address:       payload.Address,
		ProfilePicURL: payload.ProfilePicURL,
		Age:           payload.Age,
	}

	if payload.DateOfBirth != nil && *payload.DateOfBirth != "" {
		dob, err := utils.ParseDate(*payload.DateOfBirth)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		userToCreate.DateOfBirth = &dob
	}

	password := ""
	if payload.Password != nil {
		password = *payload.Password
	}

	createdUser, err := h.service.CreateUser(userToCreate, password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			utils.RespondConflictError(c, services.ErrEmailAlreadyRegistered.Error())
		} else if errors.Is(err, services.ErrInvalidRole) {
			utils.RespondValidationError(c, err.Error())
		} else {
			utils.RespondInternalServerError(c, "创建用户失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, createdUser, "用户创建成功")
}

// UpdateUser godoc
// @Summary 更新指定用户的信息
// @Description 部分更新：请求体中未出现的字段保持不变；只有提供了新密码时才会重置密码。仅教师可用。
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param userUpdate body models.UpdateUserPayload true "要更新的用户字段"
// @Success 200 {object} utils.SuccessResponse{data=models.User} "更新后的用户对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 403 {object} utils.APIErrorResponse "当前角色无权访问"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 409 {object} utils.APIErrorResponse "邮箱已存在"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /user/{id} [put]
// @Security BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "无效的用户ID")
		return
	}

	var payload models.UpdateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updatedUser, err := h.service.UpdateUser(id, payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondNotFoundError(c, "用户")
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			utils.RespondConflictError(c, services.ErrEmailAlreadyRegistered.Error())
		case errors.Is(err, services.ErrNoUpdateFields), errors.Is(err, services.ErrInvalidRole):
			utils.RespondAPIError(c, http.StatusBadRequest, err.Error(), nil)
		default:
			utils.RespondInternalServerError(c, "更新用户信息失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, updatedUser, "用户信息更新成功")
}

// DeleteUser godoc
// @Summary 停用指定用户（软删除）
// @Description 将用户标记为停用并记录删除时间，行保留在数据库中仍可被列表查询。仅教师可用。
// @Tags users
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} utils.SuccessResponse "停用成功"
// @Failure 400 {object} utils.APIErrorResponse "无效的用户ID"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 403 {object} utils.APIErrorResponse "当前角色无权访问"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /user/{id} [delete]
// @Security BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "无效的用户ID")
		return
	}

	deletedUser, err := h.service.SoftDeleteUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondNotFoundError(c, "用户")
		} else {
			utils.RespondInternalServerError(c, "停用用户失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, fmt.Sprintf("用户 '%s' 已标记为停用", deletedUser.Name))
}
