package main

import (
	"github.com/gin-gonic/gin"
	"start-academy.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	verificationHandler *handlers.VerificationHandler
	applicationHandler  *handlers.ApplicationHandler
	authHandler         *handlers.AuthHandler
	subscriptionHandler *handlers.SubscriptionHandler
	adminHandler        *handlers.AdminHandler
	adminAuthMiddleware gin.HandlerFunc
}

// registerRootRoutes keeps the email verification endpoints at the root path,
// matching the public contract consumed by the site.
func registerRootRoutes(r *gin.Engine, d routeDeps) {
	r.POST("/send-code", d.verificationHandler.SendCode)
	r.POST("/verify-code", d.verificationHandler.VerifyCode)
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Public routes
		v1.POST("/applications", d.applicationHandler.Submit)
		v1.POST("/register", d.authHandler.Register)
		v1.POST("/subscribe", d.subscriptionHandler.Subscribe)

		// Admin login (public, rate limited per IP)
		v1.POST("/admin/login", d.adminHandler.Login)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.adminAuthMiddleware)
		{
			admin.GET("/applications", d.adminHandler.ListApplications)

			admin.POST("/send-acceptance", d.adminHandler.SendAcceptance)
			admin.POST("/send-acceptance-with-aid", d.adminHandler.SendAcceptanceWithAid)
			admin.POST("/send-rejection", d.adminHandler.SendRejection)
			admin.POST("/send-deferral", d.adminHandler.SendDeferral)
			admin.POST("/send-waitlist", d.adminHandler.SendWaitlist)
			admin.POST("/send-custom", d.adminHandler.SendCustom)
		}
	}
}
