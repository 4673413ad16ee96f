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

// KeyRegistryService is the key lifecycle surface the handler depends on
type KeyRegistryService interface {
	CreateKey(ctx context.Context, createdBy uuid.UUID, input *entities.CreateKeyInput) (*entities.AccessKey, error)
	GetKey(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	ListKeys(ctx context.Context) ([]*entities.AccessKey, error)
	DeactivateKey(ctx context.Context, id uuid.UUID) error
	ReactivateKey(ctx context.Context, id uuid.UUID) error
	DeleteKey(ctx context.Context, id uuid.UUID) error
}

// CreditLedgerService is the balance mutation surface the handler depends on
type CreditLedgerService interface {
	AddCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error)
	DeductCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error)
	DeductByKeyValue(ctx context.Context, keyValue string, amount int64) (*entities.AccessKey, error)
}

// KeyHandler handles access key endpoints
type KeyHandler struct {
	registry KeyRegistryService
	ledger   CreditLedgerService
}

// NewKeyHandler creates a new key handler
func NewKeyHandler(registry KeyRegistryService, ledger CreditLedgerService) *KeyHandler {
	return &KeyHandler{registry: registry, ledger: ledger}
}

type creditMutationInput struct {
	Amount int64 `json:"amount" binding:"required"`
}

type consumeInput struct {
	KeyValue string `json:"keyValue" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

// Create registers a new access key
// POST /api/v1/keys
func (h *KeyHandler) Create(c *gin.Context) {
	var input entities.CreateKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	createdBy, _ := middleware.GetUserID(c)
	key, err := h.registry.CreateKey(c.Request.Context(), createdBy, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, key)
}

// List returns all keys in insertion order
// GET /api/v1/keys
func (h *KeyHandler) List(c *gin.Context) {
	keys, err := h.registry.ListKeys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"keys": keys})
}

// Get returns one key
// GET /api/v1/keys/:id
func (h *KeyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid key id"))
		return
	}

	key, err := h.registry.GetKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, key)
}

// Deactivate suspends a key
// POST /api/v1/keys/:id/deactivate
func (h *KeyHandler) Deactivate(c *gin.Context) {
	h.setActive(c, h.registry.DeactivateKey)
}

// Reactivate lifts a suspension
// POST /api/v1/keys/:id/reactivate
func (h *KeyHandler) Reactivate(c *gin.Context) {
	h.setActive(c, h.registry.ReactivateKey)
}

func (h *KeyHandler) setActive(c *gin.Context, fn func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid key id"))
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Delete removes a key permanently (admin only)
// DELETE /api/v1/keys/:id
func (h *KeyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid key id"))
		return
	}

	if err := h.registry.DeleteKey(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// AddCredits tops up a key
// POST /api/v1/keys/:id/credits/add
func (h *KeyHandler) AddCredits(c *gin.Context) {
	h.mutateCredits(c, h.ledger.AddCredits)
}

// DeductCredits spends from a key by ID
// POST /api/v1/keys/:id/credits/deduct
func (h *KeyHandler) DeductCredits(c *gin.Context) {
	h.mutateCredits(c, h.ledger.DeductCredits)
}

func (h *KeyHandler) mutateCredits(c *gin.Context, fn func(context.Context, uuid.UUID, int64) (*entities.AccessKey, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid key id"))
		return
	}

	var input creditMutationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	key, err := fn(c.Request.Context(), id, input.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, key)
}

// Consume spends from a key presented by value, the consumption path
// POST /api/v1/consume
func (h *KeyHandler) Consume(c *gin.Context) {
	var input consumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	key, err := h.ledger.DeductByKeyValue(c.Request.Context(), input.KeyValue, input.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"keyValue": key.KeyValue,
		"credits":  key.Credits,
	})
}
