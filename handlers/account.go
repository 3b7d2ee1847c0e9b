package handlers

import (
	"errors"
	"net/http"

	"github.com/kpasag/MedTime/middleware"
	account "github.com/kpasag/MedTime/services/account"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes account endpoints.
type AccountHandler struct {
	Service account.AccountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// CreateAccountHandler handles POST /api/accounts. The account is created
// from the verified identity; the request carries no body.
func (h *AccountHandler) CreateAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()

	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	acc, err := h.Service.CreateAccount(identity)
	if err != nil {
		if errors.Is(err, account.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Account already exists"})
			return
		}
		logger.Error("failed to create account", zap.String("accountID", identity.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, acc)
}

// GetAccountHandler handles GET /api/accounts/me, returning the expanded view.
func (h *AccountHandler) GetAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()

	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	view, err := h.Service.GetAccount(identity)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("failed to get account", zap.String("accountID", identity.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
