package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/app/middleware"
	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// InterfaceAuthController auth controller interface
type InterfaceAuthController interface {
	Register()
	RegisterFirst()
	Login()
	Me()
	GetUsers()
	UpdateUser()
	DeleteUser()
}

// AuthController handles registration, login and user management
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"Admin1234"`
}

// HandleAuthFunc returns a gin handler for auth requests
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "registerFirst":
			controller.RegisterFirst()
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		case "getUsers":
			controller.GetUsers()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *AuthController) service() services.InterfaceAuthService {
	return c.Container.GetService("auth").(services.InterfaceAuthService)
}

// 1. Register creates a user
// @Summary      Register user
// @Description  Admin creates a user. The role defaults to agent.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterInput true "User"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /auth/register [post]
// @Security     BearerAuth
func (c *AuthController) Register() {
	var req models.RegisterInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	user, err := c.service().Register(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to register user")
		return
	}
	response.Created(c.Ctx, "User registered successfully", user)
}

// 2. RegisterFirst creates the first admin
// @Summary      Register first admin
// @Description  Creates the first user as admin. Refused once any user exists.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body models.RegisterInput true "User"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /auth/register-first [post]
func (c *AuthController) RegisterFirst() {
	var req models.RegisterInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	count, err := c.service().CountUsers(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to register user")
		return
	}
	if count > 0 {
		response.FailWithMessage(c.Ctx, code.ErrSetupComplete, "Setup already completed. Please login with an admin account.", nil)
		return
	}

	req.Role = string(models.RoleAdmin)
	user, err := c.service().Register(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to register user")
		return
	}
	response.Created(c.Ctx, "Admin user created successfully", user)
}

// 3. Login issues a token
// @Summary      User login
// @Description  Checks the credentials and returns a JWT valid for 12 hours
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  services.LoginResult
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Please provide username and password", nil)
		return
	}

	result, err := c.service().Login(c.Ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c.Ctx, err, "Login failed")
		return
	}
	response.Success(c.Ctx, result)
}

// 4. Me returns the authenticated user
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	user, err := c.service().GetUser(c.Ctx.Request.Context(), middleware.CurrentUserID(c.Ctx))
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get user")
		return
	}
	response.Success(c.Ctx, user)
}

// 5. GetUsers lists every user
// @Summary      List users
// @Tags         Auth
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /auth/users [get]
// @Security     BearerAuth
func (c *AuthController) GetUsers() {
	users, err := c.service().GetAllUsers(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get users")
		return
	}
	response.Success(c.Ctx, users)
}

// 6. UpdateUser updates a profile. Users may update themselves; admins may
// update anyone and are the only ones allowed to change roles.
// @Summary      Update user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body models.UpdateUserInput true "Fields to update"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/users/{id} [put]
// @Security     BearerAuth
func (c *AuthController) UpdateUser() {
	id := c.Ctx.Param("id")
	role, _ := middleware.CurrentRole(c.Ctx)
	isAdmin := role == models.RoleAdmin
	if id != middleware.CurrentUserID(c.Ctx) && !isAdmin {
		response.FailWithMessage(c.Ctx, code.ErrForbidden, "You can only update your own profile", nil)
		return
	}

	var req models.UpdateUserInput
	if !bindJSON(c.Ctx, &req) {
		return
	}
	if !isAdmin {
		req.Role = ""
	}

	user, err := c.service().UpdateUser(c.Ctx.Request.Context(), id, req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to update user")
		return
	}
	response.SuccessWithMessage(c.Ctx, "User updated successfully", user)
}

// 7. DeleteUser removes a user other than the caller
// @Summary      Delete user
// @Tags         Auth
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/users/{id} [delete]
// @Security     BearerAuth
func (c *AuthController) DeleteUser() {
	id := c.Ctx.Param("id")
	if id == middleware.CurrentUserID(c.Ctx) {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "You cannot delete your own account", nil)
		return
	}

	if err := c.service().DeleteUser(c.Ctx.Request.Context(), id); err != nil {
		response.Error(c.Ctx, err, "Failed to delete user")
		return
	}
	response.SuccessWithMessage(c.Ctx, "User deleted successfully", nil)
}
