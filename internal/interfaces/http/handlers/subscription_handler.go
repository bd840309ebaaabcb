package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/interfaces/http/response"
	"start-academy.backend/internal/usecases"
)

// SubscriptionHandler handles announcement signups
type SubscriptionHandler struct {
	subscriptionUsecase *usecases.SubscriptionUsecase
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionUsecase *usecases.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUsecase: subscriptionUsecase,
	}
}

// Subscribe signs an email up for announcements
// POST /api/v1/subscribe
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Email is required"))
		return
	}

	if err := h.subscriptionUsecase.Subscribe(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Successfully subscribed!"})
}
