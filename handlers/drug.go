package handlers

import (
	"errors"
	"net/http"

	drug "github.com/kpasag/MedTime/services/drug"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DrugHandler exposes the drug-name suggestion proxy.
type DrugHandler struct {
	Service drug.SuggestionService
}

// NewDrugHandler creates a DrugHandler.
func NewDrugHandler(svc drug.SuggestionService) *DrugHandler {
	return &DrugHandler{Service: svc}
}

// SuggestHandler handles GET /api/drugs/suggest?q=.
func (h *DrugHandler) SuggestHandler(c *gin.Context) {
	suggestions, err := h.Service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		var upstream drug.UpstreamError
		switch {
		case errors.Is(err, drug.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		case errors.As(err, &upstream):
			utils.GetLogger().Error("drug lookup failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
