package handlers

import (
	"errors"
	"net/http"

	"github.com/kpasag/MedTime/middleware"
	"github.com/kpasag/MedTime/models"
	linking "github.com/kpasag/MedTime/services/linking"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkingHandler exposes caregiver/patient linking endpoints.
type LinkingHandler struct {
	Service linking.LinkingService
}

// NewLinkingHandler creates a LinkingHandler.
func NewLinkingHandler(svc linking.LinkingService) *LinkingHandler {
	return &LinkingHandler{Service: svc}
}

// LinkCaregiverHandler handles POST /api/accounts/me/link-caregiver.
func (h *LinkingHandler) LinkCaregiverHandler(c *gin.Context) {
	h.link(c, h.Service.LinkCaregiver)
}

// LinkPatientHandler handles POST /api/accounts/me/link-patient.
func (h *LinkingHandler) LinkPatientHandler(c *gin.Context) {
	h.link(c, h.Service.LinkPatient)
}

func (h *LinkingHandler) link(c *gin.Context, op func(utils.Identity, string) (*models.LinkConfirmation, error)) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var req models.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := op(identity, req.Email)
	if err != nil {
		var alreadyLinked linking.AlreadyLinkedError
		switch {
		case errors.Is(err, linking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, linking.ErrSelfLink):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot link yourself"})
		case errors.As(err, &alreadyLinked):
			c.JSON(http.StatusBadRequest, gin.H{"error": alreadyLinked.Error()})
		default:
			utils.GetLogger().Error("link operation failed",
				zap.String("accountID", identity.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, confirmation)
}
