package handlers

import (
	"errors"
	"net/http"

	"github.com/kpasag/MedTime/middleware"
	"github.com/kpasag/MedTime/models"
	reminder "github.com/kpasag/MedTime/services/reminder"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes reminder endpoints.
type ReminderHandler struct {
	Service reminder.ReminderService
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// ListRemindersHandler handles GET /api/accounts/me/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	reminders, err := h.Service.ListReminders(identity)
	if err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// AddReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) AddReminderHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input models.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.AddReminder(identity, input)
	if err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReminderHandler handles PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input models.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UpdateReminder(identity, c.Param("id"), input)
	if err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReminderHandler handles DELETE /api/reminders/:id. Deleting a
// reminder id with no backing document still succeeds once the account is
// found.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	if err := h.Service.DeleteReminder(identity, c.Param("id")); err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// MarkDoseTakenHandler handles POST /api/reminders/:id/taken.
func (h *ReminderHandler) MarkDoseTakenHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input models.DoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.MarkDoseTaken(c.Param("id"), input.Time, input.ScheduledFor)
	if err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UnmarkDoseTakenHandler handles POST /api/reminders/:id/unmark.
func (h *ReminderHandler) UnmarkDoseTakenHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input models.DoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UnmarkDoseTaken(c.Param("id"), input.Time, input.ScheduledFor)
	if err != nil {
		h.writeError(c, identity.UID, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// writeError maps reminder service errors to HTTP statuses. Unexpected
// failures surface with their message intact.
func (h *ReminderHandler) writeError(c *gin.Context, accountID string, err error) {
	var validation reminder.ValidationError
	switch {
	case errors.Is(err, reminder.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	case errors.Is(err, reminder.ErrReminderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	default:
		utils.GetLogger().Error("reminder operation failed",
			zap.String("accountID", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
