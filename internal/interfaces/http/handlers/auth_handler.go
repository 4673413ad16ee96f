package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/interfaces/http/middleware"
	"card-admin.backend/internal/interfaces/http/response"
)

// AuthService is the authentication surface the handler depends on
type AuthService interface {
	Authenticate(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// AuthHandler handles authentication and operator management endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authService.Authenticate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me returns the authenticated operator
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.ErrInvalidCredentials)
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// CreateUser registers a new operator (admin only)
// POST /api/v1/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// ListUsers lists all operators (admin only)
// GET /api/v1/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}
