package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/interfaces/http/response"
	"start-academy.backend/internal/usecases"
)

// ApplicationHandler handles application intake
type ApplicationHandler struct {
	applicationUsecase *usecases.ApplicationUsecase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
	}
}

// Submit handles an application submission
// POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var input entities.SubmitApplicationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Validation failed"))
		return
	}

	app, err := h.applicationUsecase.Submit(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			// one application per email
			response.Error(c, domainerrors.BadRequest("An application with this email address has already been submitted. Each email can only be used once."))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":       true,
		"message":       "Application submitted successfully",
		"applicationId": app.ID,
	})
}
