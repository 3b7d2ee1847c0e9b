package routes

import (
	"net/http"
	"time"

	"github.com/kpasag/MedTime/handlers"
	"github.com/kpasag/MedTime/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers account and linking endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier, hb.AuthCache))
		api.POST("", hb.CreateAccountHandler)
		api.GET("/me", hb.GetAccountHandler)
		api.GET("/me/reminders", hb.ListRemindersHandler)
		api.POST("/me/link-caregiver", hb.LinkCaregiverHandler)
		api.POST("/me/link-patient", hb.LinkPatientHandler)
	}
}

// RegisterReminderRoutes registers reminder CRUD and dose-log endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier, hb.AuthCache))
		api.POST("", hb.AddReminderHandler)
		api.PUT("/:id", hb.UpdateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
		api.POST("/:id/taken", hb.MarkDoseTakenHandler)
		api.POST("/:id/unmark", hb.UnmarkDoseTakenHandler)
	}
}

// RegisterDrugRoutes registers the drug-name suggestion proxy.
func RegisterDrugRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drugs")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier, hb.AuthCache))
		api.GET("/suggest", hb.DrugSuggestHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MedTime"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterDrugRoutes(r, hb)
	RegisterHealthRoute(r)
}
