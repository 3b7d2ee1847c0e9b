package handlers

import (
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle aggregates every route handler plus the dependencies route
// registration needs.
type HandlerBundle struct {
	Verifier  utils.IdentityVerifier
	AuthCache *redis.Client

	// Account endpoints.
	CreateAccountHandler gin.HandlerFunc
	GetAccountHandler    gin.HandlerFunc

	// Reminder endpoints.
	ListRemindersHandler   gin.HandlerFunc
	AddReminderHandler     gin.HandlerFunc
	UpdateReminderHandler  gin.HandlerFunc
	DeleteReminderHandler  gin.HandlerFunc
	MarkDoseTakenHandler   gin.HandlerFunc
	UnmarkDoseTakenHandler gin.HandlerFunc

	// Linking endpoints.
	LinkCaregiverHandler gin.HandlerFunc
	LinkPatientHandler   gin.HandlerFunc

	// Drug suggestion endpoint.
	DrugSuggestHandler gin.HandlerFunc
}
