// Package testutil provides in-memory repository implementations for tests.
package testutil

import (
	"fmt"
	"sync"
	"time"

	accountRepo "github.com/kpasag/MedTime/database/repository/account"
	reminderRepo "github.com/kpasag/MedTime/database/repository/reminder"
	"github.com/kpasag/MedTime/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MemAccountRepo is an in-memory AccountRepository.
type MemAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

var _ accountRepo.AccountRepository = (*MemAccountRepo)(nil)

// NewMemAccountRepo creates an empty in-memory account repository.
func NewMemAccountRepo() *MemAccountRepo {
	return &MemAccountRepo{accounts: make(map[string]*models.Account)}
}

// Len reports the number of stored accounts.
func (r *MemAccountRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

func (r *MemAccountRepo) GetByID(id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := cloneAccount(acc)
	return &cp, nil
}

func (r *MemAccountRepo) GetByEmail(email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.Email == email {
			cp := cloneAccount(acc)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemAccountRepo) GetSummariesByIDs(ids []string) ([]models.AccountSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summaries := []models.AccountSummary{}
	for _, id := range ids {
		if acc, ok := r.accounts[id]; ok {
			summaries = append(summaries, models.AccountSummary{ID: acc.ID, Email: acc.Email})
		}
	}
	return summaries, nil
}

func (r *MemAccountRepo) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("duplicate account id %s", account.ID)
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	cp := cloneAccount(account)
	r.accounts[account.ID] = &cp
	return nil
}

func (r *MemAccountRepo) PushReminder(accountID, reminderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[accountID]
	if !ok {
		return fmt.Errorf("account with id %s: %w", accountID, accountRepo.ErrNotFound)
	}
	acc.Reminders = append(acc.Reminders, reminderID)
	return nil
}

func (r *MemAccountRepo) PullReminder(accountID, reminderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[accountID]
	if !ok {
		return fmt.Errorf("account with id %s: %w", accountID, accountRepo.ErrNotFound)
	}
	kept := acc.Reminders[:0]
	for _, id := range acc.Reminders {
		if id != reminderID {
			kept = append(kept, id)
		}
	}
	acc.Reminders = kept
	return nil
}

func (r *MemAccountRepo) AddCaregiver(accountID, caregiverID string) error {
	return r.addToSet(accountID, caregiverID, true)
}

func (r *MemAccountRepo) AddPatient(accountID, patientID string) error {
	return r.addToSet(accountID, patientID, false)
}

func (r *MemAccountRepo) addToSet(accountID, otherID string, caregiver bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[accountID]
	if !ok {
		return fmt.Errorf("account with id %s: %w", accountID, accountRepo.ErrNotFound)
	}
	target := &acc.LinkedPatients
	if caregiver {
		target = &acc.LinkedCaregivers
	}
	for _, id := range *target {
		if id == otherID {
			return nil
		}
	}
	*target = append(*target, otherID)
	return nil
}

func cloneAccount(acc *models.Account) models.Account {
	cp := *acc
	cp.Reminders = append([]string{}, acc.Reminders...)
	cp.LinkedCaregivers = append([]string{}, acc.LinkedCaregivers...)
	cp.LinkedPatients = append([]string{}, acc.LinkedPatients...)
	return cp
}

// MemReminderRepo is an in-memory ReminderRepository.
type MemReminderRepo struct {
	mu        sync.Mutex
	reminders map[string]*models.Reminder
}

var _ reminderRepo.ReminderRepository = (*MemReminderRepo)(nil)

// NewMemReminderRepo creates an empty in-memory reminder repository.
func NewMemReminderRepo() *MemReminderRepo {
	return &MemReminderRepo{reminders: make(map[string]*models.Reminder)}
}

// Len reports the number of stored reminders.
func (r *MemReminderRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reminders)
}

func (r *MemReminderRepo) GetByID(id string) (*models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.reminders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneReminder(rem)
	return &cp, nil
}

func (r *MemReminderRepo) GetByIDs(ids []string) ([]models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reminders := []models.Reminder{}
	for _, id := range ids {
		if rem, ok := r.reminders[id]; ok {
			reminders = append(reminders, cloneReminder(rem))
		}
	}
	return reminders, nil
}

func (r *MemReminderRepo) Create(reminder *models.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneReminder(reminder)
	r.reminders[reminder.ID] = &cp
	return nil
}

func (r *MemReminderRepo) UpdateFields(id string, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.reminders[id]
	if !ok {
		return fmt.Errorf("reminder with id %s: %w", id, reminderRepo.ErrNotFound)
	}
	for key, value := range fields {
		switch key {
		case "name":
			rem.Name = value.(string)
		case "dosage":
			rem.Dosage = value.(string)
		case "timesPerDay":
			rem.TimesPerDay = append([]string{}, value.([]string)...)
		case "frequencyInDays":
			rem.FrequencyInDays = value.(int)
		case "doseLog":
			rem.DoseLog = append([]models.DoseRecord{}, value.([]models.DoseRecord)...)
		default:
			return fmt.Errorf("unsupported field %q", key)
		}
	}
	return nil
}

func (r *MemReminderRepo) SetDoseLog(id string, doseLog []models.DoseRecord) error {
	return r.UpdateFields(id, bson.M{"doseLog": doseLog})
}

func (r *MemReminderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reminders, id)
	return nil
}

func cloneReminder(rem *models.Reminder) models.Reminder {
	cp := *rem
	cp.TimesPerDay = append([]string{}, rem.TimesPerDay...)
	cp.DoseLog = append([]models.DoseRecord{}, rem.DoseLog...)
	return cp
}
