package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tawqimpact/fundraising-api/internal/dto"
	apierrors "github.com/tawqimpact/fundraising-api/internal/errors"
	"github.com/tawqimpact/fundraising-api/internal/middleware"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email     string  `json:"email" binding:"required,email"`
		FullName  string  `json:"full_name" binding:"required"`
		Password  string  `json:"password" binding:"required"`
		Role      string  `json:"role" binding:"required"`
		AvatarURL *string `json:"avatar_url"`
		IsActive  *bool   `json:"is_active"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  req.Password,
		Role:      models.Role(req.Role),
		AvatarURL: req.AvatarURL,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			apierrors.Conflict(c, "Email already registered")
		case errors.Is(err, services.ErrInvalidRole):
			apierrors.BadRequest(c, "Invalid role")
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.BadRequest(c, "Password too short")
		default:
			apierrors.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Token authenticates a user and issues a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	type TokenRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing credentials")
		return
	}

	token, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.BadRequest(c, "Incorrect email or password")
		case errors.Is(err, services.ErrInactiveAccount):
			apierrors.BadRequest(c, "Inactive account")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
