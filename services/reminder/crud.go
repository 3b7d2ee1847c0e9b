package reminder

import (
	"errors"
	"fmt"

	accountRepo "github.com/kpasag/MedTime/database/repository/account"
	reminderRepo "github.com/kpasag/MedTime/database/repository/reminder"
	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListReminders resolves the caller's reminder references to full documents.
// Dangling references are skipped; an account with none returns an empty slice.
func (s *DefaultReminderService) ListReminders(identity utils.Identity) ([]models.Reminder, error) {
	acc, err := s.Accounts.GetByID(identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	reminders, err := s.Repo.GetByIDs(acc.Reminders)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reminders: %w", err)
	}

	// Restore the account's reference order; $in queries do not preserve it.
	byID := make(map[string]models.Reminder, len(reminders))
	for _, rem := range reminders {
		byID[rem.ID] = rem
	}
	ordered := make([]models.Reminder, 0, len(reminders))
	for _, id := range acc.Reminders {
		if rem, ok := byID[id]; ok {
			ordered = append(ordered, rem)
		}
	}
	return ordered, nil
}

// AddReminder persists a new reminder and appends its id to the caller's
// account. The two writes are independent: if the account vanished in
// between, the reminder document is left orphaned (tolerated by read paths)
// and the call fails with ErrAccountNotFound.
func (s *DefaultReminderService) AddReminder(identity utils.Identity, input models.ReminderInput) (*models.Reminder, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	rem := &models.Reminder{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Dosage:            input.Dosage,
		TimesPerDay:       input.TimesPerDay,
		FrequencyInDays:   input.FrequencyInDays,
		DoseLog:           []models.DoseRecord{},
		NextScheduledDate: now,
		CreatedAt:         now,
	}
	if err := s.Repo.Create(rem); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	if err := s.Accounts.PushReminder(identity.UID, rem.ID); err != nil {
		if errors.Is(err, accountRepo.ErrNotFound) {
			logger.Warn("account vanished after reminder insert, orphan left behind",
				zap.String("accountID", identity.UID), zap.String("reminderID", rem.ID))
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to append reminder to account: %w", err)
	}

	logger.Info("reminder created", zap.String("reminderID", rem.ID), zap.String("accountID", identity.UID))
	return rem, nil
}

// UpdateReminder replaces the four editable fields and returns the updated
// document. Ownership is not verified: any authenticated caller who knows a
// reminder id may update it (see DESIGN.md).
func (s *DefaultReminderService) UpdateReminder(identity utils.Identity, reminderID string, input models.ReminderInput) (*models.Reminder, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	fields := bson.M{
		"name":            input.Name,
		"dosage":          input.Dosage,
		"timesPerDay":     input.TimesPerDay,
		"frequencyInDays": input.FrequencyInDays,
	}
	if err := s.Repo.UpdateFields(reminderID, fields); err != nil {
		if errors.Is(err, reminderRepo.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	updated, err := s.Repo.GetByID(reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated reminder: %w", err)
	}
	if updated == nil {
		return nil, ErrReminderNotFound
	}
	return updated, nil
}

// DeleteReminder removes the account's reference first, then the reminder
// document. Both removals are no-ops when the target is already gone, so the
// call succeeds for any reminder id once the account is found.
func (s *DefaultReminderService) DeleteReminder(identity utils.Identity, reminderID string) error {
	if err := s.Accounts.PullReminder(identity.UID, reminderID); err != nil {
		if errors.Is(err, accountRepo.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to remove reminder reference: %w", err)
	}

	if err := s.Repo.Delete(reminderID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	utils.GetLogger().Info("reminder deleted",
		zap.String("reminderID", reminderID), zap.String("accountID", identity.UID))
	return nil
}
