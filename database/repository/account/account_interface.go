package accountRepo

import (
	"errors"

	"github.com/kpasag/MedTime/models"
)

// ErrNotFound is returned by mutations whose filter matched no account.
var ErrNotFound = errors.New("account not found")

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its provider-issued id.
	// Returns (nil, nil) when no account matches.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its lowercased email.
	// Returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.Account, error)
	// GetSummariesByIDs resolves account ids to summaries, omitting ids that
	// no longer resolve to a document.
	GetSummariesByIDs(ids []string) ([]models.AccountSummary, error)
	// Create inserts a new account record.
	Create(account *models.Account) error
	// PushReminder appends a reminder id to the account's reference sequence.
	PushReminder(accountID, reminderID string) error
	// PullReminder removes a reminder id from the account's reference
	// sequence. Removing an absent id is a no-op, but the account must exist.
	PullReminder(accountID, reminderID string) error
	// AddCaregiver adds a caregiver reference with set semantics.
	AddCaregiver(accountID, caregiverID string) error
	// AddPatient adds a patient reference with set semantics.
	AddPatient(accountID, patientID string) error
}
