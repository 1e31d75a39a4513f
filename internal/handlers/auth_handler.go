package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school_portal/internal/models"
	"github.com/school_portal/internal/services"
	"github.com/school_portal/pkg/utils"
)

// AuthHandler 封装了注册与登录相关的 HTTP 处理逻辑
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRequest 定义了注册请求的 JSON 结构体
type RegisterRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Email         string  `json:"email" binding:"required,email,max=255"`
	Password      string  `json:"password" binding:"required,min=1"`
	Role          string  `json:"role" binding:"omitempty,oneof=Student Teacher"` // 缺省为 Student
	Gender        *string `json:"gender,omitempty" binding:"omitempty,max=50"`
	Designation   *string `json:"designation,omitempty" binding:"omitempty,max=255"`
	Department    *string `json:"department,omitempty" binding:"omitempty,max=255"`
	PhoneNumber   *string `json:"phoneNumber,omitempty" binding:"omitempty,max=50"`
	Address       *string `json:"address,omitempty" binding:"omitempty,max=255"`
	ProfilePicURL *string `json:"profilePicUrl,omitempty" binding:"omitempty,max=512"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty" binding:"omitempty"` // YYYY-MM-DD
	Age           *int    `json:"age,omitempty" binding:"omitempty,min=0"`
}

// LoginRequest 定义了登录请求的 JSON 结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 用户注册
// @Description 创建一个新用户。角色缺省为 Student。注册成功不返回 Token，需要随后登录。
// @Tags auth
// @Accept  json
// @Produce  json
// @Param user body RegisterRequest true "注册信息"
// @Success 200 {object} utils.SuccessResponse "注册成功"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 409 {object} utils.APIErrorResponse "邮箱已被注册"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		Gender:        req.Gender,
		Designation:   req.Designation,
		Department:    req.Department,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		ProfilePicURL: req.ProfilePicURL,
		Age:           req.Age,
	}

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := utils.ParseDate(*req.DateOfBirth)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		user.DateOfBirth = &dob
	}

	if _, err := h.service.Register(user, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			utils.RespondConflictError(c, services.ErrEmailAlreadyRegistered.Error())
		} else if errors.Is(err, services.ErrInvalidRole) {
			utils.RespondValidationError(c, err.Error())
		} else {
			utils.RespondInternalServerError(c, "用户注册失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "用户注册成功")
}

// Login godoc
// @Summary 用户登录
// @Description 验证邮箱和密码，成功后返回 JWT 和用户角色
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.SuccessResponse{data=services.LoginResult} "登录成功，返回 Token 和角色"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "无效的邮箱或密码"
// @Failure 500 {object} utils.APIErrorResponse "无法生成Token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondUnauthorizedError(c, services.ErrInvalidCredentials.Error())
		} else {
			utils.RespondInternalServerError(c, "登录失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result, "登录成功")
}
