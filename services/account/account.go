package account

import (
	"fmt"
	"strings"

	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"

	"go.uber.org/zap"
)

// CreateAccount persists a new account for the verified identity. The second
// call for the same identity fails with ErrAlreadyExists and leaves the
// account collection unchanged.
func (s *DefaultAccountService) CreateAccount(identity utils.Identity) (*models.Account, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		logger.Debug("account already exists", zap.String("accountID", identity.UID))
		return nil, ErrAlreadyExists
	}

	acc := &models.Account{
		ID:               identity.UID,
		Email:            strings.ToLower(identity.Email),
		Reminders:        []string{},
		LinkedCaregivers: []string{},
		LinkedPatients:   []string{},
	}
	if err := s.Repo.Create(acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("account created", zap.String("accountID", acc.ID))
	return acc, nil
}

// GetAccount returns the caller's account with reminders expanded to full
// documents and linked accounts expanded to {id, email} summaries. References
// that no longer resolve are dropped from the view rather than failing it.
func (s *DefaultAccountService) GetAccount(identity utils.Identity) (*models.AccountView, error) {
	acc, err := s.Repo.GetByID(identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, ErrNotFound
	}

	reminders, err := s.Reminders.GetByIDs(acc.Reminders)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reminders: %w", err)
	}
	reminders = orderReminders(acc.Reminders, reminders)

	caregivers, err := s.Repo.GetSummariesByIDs(acc.LinkedCaregivers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve linked caregivers: %w", err)
	}
	patients, err := s.Repo.GetSummariesByIDs(acc.LinkedPatients)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve linked patients: %w", err)
	}

	return &models.AccountView{
		ID:               acc.ID,
		Email:            acc.Email,
		Reminders:        reminders,
		LinkedCaregivers: caregivers,
		LinkedPatients:   patients,
		CreatedAt:        acc.CreatedAt,
	}, nil
}

// orderReminders restores the account's reference order, which a $in query
// does not preserve.
func orderReminders(ids []string, reminders []models.Reminder) []models.Reminder {
	byID := make(map[string]models.Reminder, len(reminders))
	for _, rem := range reminders {
		byID[rem.ID] = rem
	}
	ordered := make([]models.Reminder, 0, len(reminders))
	for _, id := range ids {
		if rem, ok := byID[id]; ok {
			ordered = append(ordered, rem)
		}
	}
	return ordered
}
