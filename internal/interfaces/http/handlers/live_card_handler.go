package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/interfaces/http/response"
)

// LiveCardService is the card passthrough surface the handler depends on
type LiveCardService interface {
	Create(ctx context.Context, card *entities.LiveCard) (*entities.LiveCard, error)
	List(ctx context.Context) ([]*entities.LiveCard, error)
}

// LiveCardHandler handles live card endpoints
type LiveCardHandler struct {
	cardService LiveCardService
}

// NewLiveCardHandler creates a new live card handler
func NewLiveCardHandler(cardService LiveCardService) *LiveCardHandler {
	return &LiveCardHandler{cardService: cardService}
}

// Create stores one card record
// POST /api/v1/cards
func (h *LiveCardHandler) Create(c *gin.Context) {
	var card entities.LiveCard
	if err := c.ShouldBindJSON(&card); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	created, err := h.cardService.Create(c.Request.Context(), &card)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List returns all cards, newest first
// GET /api/v1/cards
func (h *LiveCardHandler) List(c *gin.Context) {
	cards, err := h.cardService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cards": cards})
}
