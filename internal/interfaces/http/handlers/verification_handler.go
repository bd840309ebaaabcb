package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/interfaces/http/response"
	"start-academy.backend/internal/usecases"
)

// VerificationHandler handles the email verification code endpoints
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
	}
}

// SendCode issues a verification code
// POST /send-code
func (h *VerificationHandler) SendCode(c *gin.Context) {
	var input entities.SendCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid email format"))
		return
	}

	result, err := h.verificationUsecase.RequestCode(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError,
			domainerrors.CodeInternalError, "Failed to generate verification code", err))
		return
	}

	message := "Verification code generated (check console in dev mode)"
	if result.Delivered {
		message = "Verification code sent to your email"
	}

	body := gin.H{"ok": true, "message": message}
	if result.DevCode != "" {
		body["developmentCode"] = result.DevCode
	}
	response.Success(c, http.StatusOK, body)
}

// VerifyCode redeems a verification code
// POST /verify-code
func (h *VerificationHandler) VerifyCode(c *gin.Context) {
	var input entities.VerifyCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Email and 6-digit code are required"))
		return
	}

	err := h.verificationUsecase.VerifyCode(c.Request.Context(), input.Email, input.Code)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("No verification code found for this email"))
		case domainerrors.ErrCodeMismatch:
			response.Error(c, domainerrors.Unauthorized("Invalid verification code"))
		case domainerrors.ErrCodeExpired:
			response.Error(c, domainerrors.Gone("Verification code has expired"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
