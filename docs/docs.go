// Package docs 由 swag 生成并手工维护，向 gin-swagger 注册 OpenAPI 文档。
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "用户注册",
                "description": "创建一个新用户。角色缺省为 Student。注册成功不返回 Token，需要随后登录。",
                "parameters": [
                    {
                        "description": "注册信息",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "注册成功"},
                    "400": {"description": "请求参数错误"},
                    "409": {"description": "邮箱已被注册"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "用户登录",
                "description": "验证邮箱和密码，成功后返回 JWT 和用户角色",
                "parameters": [
                    {
                        "description": "登录凭证",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "登录成功，返回 Token 和角色"},
                    "400": {"description": "请求参数错误"},
                    "401": {"description": "无效的邮箱或密码"}
                }
            }
        },
        "/user/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "获取当前登录用户的档案",
                "responses": {
                    "200": {"description": "用户档案"},
                    "401": {"description": "未认证或 Token 无效/过期"},
                    "404": {"description": "用户未找到"}
                }
            }
        },
        "/user/all": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "获取全部用户列表（仅教师）",
                "responses": {
                    "200": {"description": "用户列表"},
                    "401": {"description": "未认证或 Token 无效/过期"},
                    "403": {"description": "当前角色无权访问"}
                }
            }
        },
        "/user": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "新增一个用户（仅教师）",
                "parameters": [
                    {
                        "description": "用户信息",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateUserPayload"}
                    }
                ],
                "responses": {
                    "201": {"description": "创建成功的用户对象"},
                    "400": {"description": "请求参数错误"},
                    "409": {"description": "邮箱已存在"}
                }
            }
        },
        "/user/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "更新指定用户的信息（仅教师，部分更新）",
                "parameters": [
                    {"type": "integer", "description": "用户ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "要更新的用户字段",
                        "name": "userUpdate",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.UpdateUserPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "更新后的用户对象"},
                    "404": {"description": "用户未找到"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "停用指定用户（仅教师，软删除）",
                "parameters": [
                    {"type": "integer", "description": "用户ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "停用成功"},
                    "404": {"description": "用户未找到"}
                }
            }
        }
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["Student", "Teacher"]},
                "gender": {"type": "string"},
                "designation": {"type": "string"},
                "department": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "address": {"type": "string"},
                "profilePicUrl": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.CreateUserPayload": {
            "type": "object",
            "required": ["name", "email", "role", "gender"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["Student", "Teacher"]},
                "gender": {"type": "string"},
                "password": {"type": "string"},
                "designation": {"type": "string"},
                "department": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "address": {"type": "string"},
                "profilePicUrl": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "models.UpdateUserPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["Student", "Teacher"]},
                "gender": {"type": "string"},
                "designation": {"type": "string"},
                "department": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "address": {"type": "string"},
                "profilePicUrl": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "age": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "School Portal API",
	Description:      "学校门户后端：用户注册、登录与档案管理，角色分为 Student 和 Teacher",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
