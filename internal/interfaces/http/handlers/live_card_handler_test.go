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
)

func TestLiveCardHandler_CreateAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewLiveCardHandler(liveCardStub{
		createFn: func(_ context.Context, card *entities.LiveCard) (*entities.LiveCard, error) {
			if card.CardNumber == "" {
				return nil, domainerrors.BadRequest("card number is required")
			}
			card.ID = uuid.New()
			return card, nil
		},
		listFn: func(_ context.Context) ([]*entities.LiveCard, error) {
			return []*entities.LiveCard{{CardNumber: "411111******1111"}}, nil
		},
	})

	router := gin.New()
	router.POST("/cards", h.Create)
	router.GET("/cards", h.List)

	w := performJSON(t, router, http.MethodPost, "/cards", gin.H{"cardNumber": "411111******1111"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, router, http.MethodPost, "/cards", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, router, http.MethodGet, "/cards", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "411111")
}
