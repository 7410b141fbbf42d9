package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"magic_prompt_server/internal/auth"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler, mw *auth.Middleware, translateLimiter *rate.Limiter) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowed)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})

	// --- Wizard ---
	wizardGroup := router.Group("/wizard")
	{
		wizardGroup.GET("/steps", h.ListSteps)
		wizardGroup.GET("/options", h.ListOptions)
		wizardGroup.POST("/sessions", h.CreateSession)
		wizardGroup.GET("/sessions/:id", h.GetSession)
		wizardGroup.DELETE("/sessions/:id", h.DeleteSession)
		wizardGroup.PUT("/sessions/:id/field", h.SetField)
		wizardGroup.POST("/sessions/:id/advance", h.Advance)
		wizardGroup.POST("/sessions/:id/retreat", h.Retreat)
		wizardGroup.POST("/sessions/:id/reset", h.Reset)
		wizardGroup.GET("/sessions/:id/preview", h.Preview)
	}

	// --- Prompts ---
	promptGroup := router.Group("/prompts")
	{
		promptGroup.POST("/compose", h.Compose)
		promptGroup.POST("/download", h.DownloadPrompt)
		promptGroup.POST("/translate", mw.RequireUser(), RateLimit(translateLimiter), h.TranslatePrompt)

		library := promptGroup.Group("", mw.RequireUser())
		library.POST("", h.SavePrompt)
		library.GET("", h.ListPrompts)
		library.GET("/:id", h.GetPrompt)
		library.DELETE("/:id", h.DeletePrompt)
		library.POST("/:id/favorite", h.ToggleFavorite)
		library.GET("/:id/export", h.ExportPrompt)
		library.GET("/:id/share", h.SharePrompt)
	}

	// --- Admin user functions ---
	functions := router.Group("/functions/v1", mw.RequireAdmin())
	{
		functions.GET("/list-users", h.ListUsers)
		functions.POST("/list-users", h.ListUsers)
		functions.POST("/create-user", h.CreateUser)
		functions.POST("/update-user", h.UpdateUser)
		functions.POST("/delete-user", h.DeleteUser)
	}
	router.GET("/api/users", mw.RequireAdmin(), h.ListProfiles)

	// --- Health & metrics ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
