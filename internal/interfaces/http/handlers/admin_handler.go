package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"start-academy.backend/internal/domain/entities"
	domainerrors "start-academy.backend/internal/domain/errors"
	"start-academy.backend/internal/interfaces/http/response"
	"start-academy.backend/internal/usecases"
	"start-academy.backend/pkg/logger"
)

// LoginLimiter throttles login attempts per client IP
type LoginLimiter interface {
	Allow(ctx context.Context, ip string) (bool, error)
	Reset(ctx context.Context, ip string) error
}

// AdminHandler handles the admissions dashboard endpoints
type AdminHandler struct {
	authUsecase        *usecases.AuthUsecase
	applicationUsecase *usecases.ApplicationUsecase
	admissionUsecase   *usecases.AdmissionUsecase
	loginLimiter       LoginLimiter
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	authUsecase *usecases.AuthUsecase,
	applicationUsecase *usecases.ApplicationUsecase,
	admissionUsecase *usecases.AdmissionUsecase,
	loginLimiter LoginLimiter,
) *AdminHandler {
	return &AdminHandler{
		authUsecase:        authUsecase,
		applicationUsecase: applicationUsecase,
		admissionUsecase:   admissionUsecase,
		loginLimiter:       loginLimiter,
	}
}

// Login handles the dashboard login
// POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var input entities.AdminLoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Username and password are required"))
		return
	}

	ip := c.ClientIP()
	if h.loginLimiter != nil {
		allowed, err := h.loginLimiter.Allow(c.Request.Context(), ip)
		if err != nil {
			// fail open when redis is unreachable, bcrypt still gates the login
			logger.Warn(c.Request.Context(), "login rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			response.Error(c, domainerrors.TooManyRequests("Too many login attempts. Try again later."))
			return
		}
	}

	token, err := h.authUsecase.AdminLogin(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized,
				domainerrors.CodeInvalidCredentials, "Invalid username or password", err))
			return
		}
		response.Error(c, err)
		return
	}

	if h.loginLimiter != nil {
		if err := h.loginLimiter.Reset(c.Request.Context(), ip); err != nil {
			logger.Warn(c.Request.Context(), "failed to reset login attempts", zap.Error(err))
		}
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// ListApplications lists the newest applications
// GET /api/v1/admin/applications
func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.applicationUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": apps,
		"count":        len(apps),
	})
}

// SendAcceptance dispatches an acceptance decision
// POST /api/v1/admin/send-acceptance
func (h *AdminHandler) SendAcceptance(c *gin.Context) {
	h.dispatchDecision(c, entities.DecisionAcceptance, "Acceptance")
}

// SendAcceptanceWithAid dispatches an acceptance with a financial aid award
// POST /api/v1/admin/send-acceptance-with-aid
func (h *AdminHandler) SendAcceptanceWithAid(c *gin.Context) {
	h.dispatchDecision(c, entities.DecisionAcceptanceWithAid, "Acceptance")
}

// SendRejection dispatches a rejection decision
// POST /api/v1/admin/send-rejection
func (h *AdminHandler) SendRejection(c *gin.Context) {
	h.dispatchDecision(c, entities.DecisionRejection, "Rejection")
}

// SendDeferral dispatches a deferral decision
// POST /api/v1/admin/send-deferral
func (h *AdminHandler) SendDeferral(c *gin.Context) {
	h.dispatchDecision(c, entities.DecisionDeferral, "Deferral")
}

// SendWaitlist dispatches a waitlist decision
// POST /api/v1/admin/send-waitlist
func (h *AdminHandler) SendWaitlist(c *gin.Context) {
	h.dispatchDecision(c, entities.DecisionWaitlist, "Waitlist")
}

// SendCustom sends a free-form letter without changing the pipeline status
// POST /api/v1/admin/send-custom
func (h *AdminHandler) SendCustom(c *gin.Context) {
	var input entities.CustomDecisionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Validation failed"))
		return
	}

	if err := h.admissionUsecase.DecideCustom(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Custom email sent to %s", input.StudentName),
	})
}

func (h *AdminHandler) dispatchDecision(c *gin.Context, decision entities.Decision, label string) {
	var input entities.DecisionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Validation failed"))
		return
	}

	if err := h.admissionUsecase.Decide(c.Request.Context(), decision, &input); err != nil {
		switch err {
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("Invalid application id"))
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Application not found"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%s email sent to %s", label, input.StudentName),
	})
}
