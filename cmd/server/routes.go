package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-recovery.backend/internal/domain/entities"
	"ledger-recovery.backend/internal/interfaces/http/handlers"
	"ledger-recovery.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	adminHandler    *handlers.AdminHandler
	sellerHandler   *handlers.SellerHandler
	clientHandler   *handlers.ClientHandler
	recoveryHandler *handlers.RecoveryHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Role-scoped logins and shared auth routes (public)
		api.POST("/client/login", d.authHandler.ClientLogin)
		api.POST("/admin/login", d.authHandler.AdminLogin)
		api.POST("/seller/login", d.authHandler.SellerLogin)
		api.POST("/auth/logout", d.authHandler.Logout)
		api.GET("/auth/me", d.authHandler.GetMe)
		api.POST("/client/register", d.authHandler.RegisterClient)

		// Public recovery intake
		api.POST("/recovery/wallet", d.recoveryHandler.SubmitWallet)
		api.POST("/recovery/seed-phrase", d.recoveryHandler.SubmitSeedPhrase)
		api.POST("/recovery/password", d.recoveryHandler.SubmitPassword)
		api.POST("/client/recovery-request", d.recoveryHandler.SubmitServiceRequest)

		// Admin routes (admin sessions only)
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleAdmin))
		{
			admin.GET("/dashboard", d.adminHandler.Dashboard)
			admin.GET("/audit-logs", d.adminHandler.AuditLogs)
			admin.GET("/kyc/documents", d.adminHandler.KYCDocuments)
			admin.GET("/recovery/requests", d.adminHandler.RecoveryRequests)
			admin.PATCH("/recovery/requests/:id/status", d.adminHandler.TransitionRecovery)
			admin.GET("/taxes/pending", d.adminHandler.PendingTaxes)
			admin.POST("/taxes/rate", d.adminHandler.UpdateTaxRate)

			admin.GET("/client/:id", d.adminHandler.GetClient)
			admin.GET("/client/:id/notes", d.adminHandler.ListNotes)
			admin.POST("/client/:id/notes", d.adminHandler.AddNote)
			admin.POST("/client/:id/status", d.adminHandler.UpdateStatus)
			admin.POST("/client/:id/risk", d.adminHandler.UpdateRisk)
			admin.POST("/client/:id/balances", d.adminHandler.UpdateBalances)
			admin.POST("/client/:id/reset-password", d.adminHandler.ResetPassword)
			admin.POST("/client/:id/assign-seller", d.adminHandler.AssignSeller)
		}

		// Seller routes (seller sessions only)
		seller := api.Group("/seller")
		seller.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleSeller))
		{
			seller.GET("/dashboard", d.sellerHandler.Dashboard)
			seller.GET("/assigned-clients", d.sellerHandler.AssignedClients)
			seller.PATCH("/client/:id/amount", d.sellerHandler.SetClientAmount)
			seller.POST("/client/:id/payment-message", d.sellerHandler.SendPaymentMessage)
		}

		// Client routes (client sessions only)
		client := api.Group("/client")
		client.Use(d.authMiddleware, middleware.RequireRole(entities.UserRoleClient))
		{
			client.GET("/dashboard", d.clientHandler.Dashboard)
		}
	}
}

func registerRootRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Ledger Recovery API is running"})
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "ledger-recovery-backend",
			"version": "0.1.0",
		})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
