package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/interfaces/http/middleware"
)

func keyRouter(h *KeyHandler, operatorID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, operatorID)
	})
	router.POST("/keys", h.Create)
	router.GET("/keys", h.List)
	router.GET("/keys/:id", h.Get)
	router.POST("/keys/:id/deactivate", h.Deactivate)
	router.POST("/keys/:id/reactivate", h.Reactivate)
	router.DELETE("/keys/:id", h.Delete)
	router.POST("/keys/:id/credits/add", h.AddCredits)
	router.POST("/keys/:id/credits/deduct", h.DeductCredits)
	router.POST("/consume", h.Consume)
	return router
}

func TestKeyHandler_Create(t *testing.T) {
	operatorID := uuid.New()
	h := NewKeyHandler(keyRegistryStub{
		createKeyFn: func(_ context.Context, createdBy uuid.UUID, input *entities.CreateKeyInput) (*entities.AccessKey, error) {
			assert.Equal(t, operatorID, createdBy)
			if input.KeyValue == "TAKEN-KEY" {
				return nil, domainerrors.ErrDuplicateKey
			}
			return &entities.AccessKey{ID: uuid.New(), KeyValue: "ABCD-1111-2222-3333", Credits: input.Credits, IsActive: true}, nil
		},
	}, creditLedgerStub{})
	router := keyRouter(h, operatorID)

	w := performJSON(t, router, http.MethodPost, "/keys", entities.CreateKeyInput{Credits: 100})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ABCD-1111-2222-3333")

	w = performJSON(t, router, http.MethodPost, "/keys", entities.CreateKeyInput{KeyValue: "TAKEN-KEY"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestKeyHandler_GetAndList(t *testing.T) {
	id := uuid.New()
	h := NewKeyHandler(keyRegistryStub{
		getKeyFn: func(_ context.Context, got uuid.UUID) (*entities.AccessKey, error) {
			if got != id {
				return nil, domainerrors.ErrNotFound
			}
			return &entities.AccessKey{ID: id, KeyValue: "ABCD-1111-2222-3333"}, nil
		},
		listKeysFn: func(_ context.Context) ([]*entities.AccessKey, error) {
			return []*entities.AccessKey{{KeyValue: "ABCD-1111-2222-3333"}}, nil
		},
	}, creditLedgerStub{})
	router := keyRouter(h, uuid.New())

	w := performJSON(t, router, http.MethodGet, "/keys/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodGet, "/keys/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, router, http.MethodGet, "/keys/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, router, http.MethodGet, "/keys", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestKeyHandler_ActivationAndDelete(t *testing.T) {
	id := uuid.New()
	var deactivated, reactivated, deleted bool
	h := NewKeyHandler(keyRegistryStub{
		deactivateFn: func(_ context.Context, got uuid.UUID) error {
			deactivated = got == id
			return nil
		},
		reactivateFn: func(_ context.Context, got uuid.UUID) error {
			reactivated = got == id
			return nil
		},
		deleteKeyFn: func(_ context.Context, got uuid.UUID) error {
			if got != id {
				return domainerrors.ErrNotFound
			}
			deleted = true
			return nil
		},
	}, creditLedgerStub{})
	router := keyRouter(h, uuid.New())

	w := performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/deactivate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deactivated)

	w = performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/reactivate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reactivated)

	w = performJSON(t, router, http.MethodDelete, "/keys/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deleted)

	w = performJSON(t, router, http.MethodDelete, "/keys/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyHandler_CreditMutations(t *testing.T) {
	id := uuid.New()
	h := NewKeyHandler(keyRegistryStub{}, creditLedgerStub{
		addFn: func(_ context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
			return &entities.AccessKey{ID: keyID, Credits: 100 + amount}, nil
		},
		deductFn: func(_ context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
			if amount > 100 {
				return nil, domainerrors.ErrInsufficientCredits
			}
			return &entities.AccessKey{ID: keyID, Credits: 100 - amount}, nil
		},
	})
	router := keyRouter(h, uuid.New())

	w := performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/credits/add", gin.H{"amount": 25})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "125")

	w = performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/credits/deduct", gin.H{"amount": 40})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "60")

	w = performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/credits/deduct", gin.H{"amount": 500})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performJSON(t, router, http.MethodPost, "/keys/"+id.String()+"/credits/add", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, router, http.MethodPost, "/keys/not-a-uuid/credits/add", gin.H{"amount": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyHandler_Consume(t *testing.T) {
	h := NewKeyHandler(keyRegistryStub{}, creditLedgerStub{
		consumeFn: func(_ context.Context, keyValue string, amount int64) (*entities.AccessKey, error) {
			switch keyValue {
			case "DEAD-0000-0000-0000":
				return nil, domainerrors.ErrKeyNotUsable
			case "NOPE-0000-0000-0000":
				return nil, domainerrors.ErrNotFound
			}
			return &entities.AccessKey{KeyValue: keyValue, Credits: 100 - amount}, nil
		},
	})
	router := keyRouter(h, uuid.New())

	w := performJSON(t, router, http.MethodPost, "/consume", gin.H{"keyValue": "ABCD-1111-2222-3333", "amount": 10})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "90")

	w = performJSON(t, router, http.MethodPost, "/consume", gin.H{"keyValue": "DEAD-0000-0000-0000", "amount": 10})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performJSON(t, router, http.MethodPost, "/consume", gin.H{"keyValue": "NOPE-0000-0000-0000", "amount": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, router, http.MethodPost, "/consume", gin.H{"amount": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
