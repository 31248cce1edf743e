package routes

import (
	"fleetsecure-api/handlers"
	"fleetsecure-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	// All allow/deny decisions live in the authz engine; the router only
	// authenticates.
	auth := r.Group("/api/v1")
	auth.Use(middleware.AuthRequired())
	{
		// Accounts
		auth.GET("/accounts", h.ListAccounts)
		auth.POST("/accounts", h.Register)
		auth.GET("/accounts/me", h.CurrentAccount)
		auth.GET("/accounts/:id", h.GetAccount)
		auth.PATCH("/accounts/:id", h.UpdateAccount)
		auth.DELETE("/accounts/:id", h.DeleteAccount)
		auth.PATCH("/accounts/:id/activate", h.ActivateAccount)
		auth.PATCH("/accounts/:id/deactivate", h.DeactivateAccount)
		auth.POST("/accounts/:id/change-password", h.ChangePassword)

		// Trucks
		auth.GET("/trucks", h.ListTrucks)
		auth.POST("/trucks", h.CreateTruck)
		auth.GET("/trucks/by-owner", h.TrucksByOwner)
		auth.GET("/trucks/by-year", h.TrucksByYear)
		auth.GET("/trucks/:id", h.GetTruck)
		auth.PATCH("/trucks/:id", h.UpdateTruck)
		auth.DELETE("/trucks/:id", h.DeleteTruck)

		// Drivers (read-only view over licensed accounts)
		auth.GET("/drivers", h.ListDrivers)
		auth.GET("/drivers/me", h.CurrentDriver)
	}
}
