package account

import (
	accountRepo "github.com/kpasag/MedTime/database/repository/account"
	reminderRepo "github.com/kpasag/MedTime/database/repository/reminder"
	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"
)

// AccountService manages account lifecycle and expanded reads.
type AccountService interface {
	// CreateAccount persists a new account for a first sign-in.
	CreateAccount(identity utils.Identity) (*models.Account, error)
	// GetAccount returns the caller's account with its reminder and link
	// references resolved to documents.
	GetAccount(identity utils.Identity) (*models.AccountView, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo      accountRepo.AccountRepository
	Reminders reminderRepo.ReminderRepository
}
