package reminder

import (
	"errors"
	"testing"

	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/testutil"
	"github.com/kpasag/MedTime/utils"
)

func newTestService(t *testing.T) (*DefaultReminderService, *testutil.MemAccountRepo, *testutil.MemReminderRepo) {
	t.Helper()
	accounts := testutil.NewMemAccountRepo()
	reminders := testutil.NewMemReminderRepo()
	svc := &DefaultReminderService{Repo: reminders, Accounts: accounts}

	acc := testutil.NewAccount("u1", "a@x.com")
	if err := accounts.Create(&acc); err != nil {
		t.Fatalf("seeding account failed: %v", err)
	}
	return svc, accounts, reminders
}

func validInput() models.ReminderInput {
	return models.ReminderInput{
		Name:            "Aspirin",
		Dosage:          "81mg",
		TimesPerDay:     []string{"08:00"},
		FrequencyInDays: 1,
	}
}

func TestAddReminderThenList(t *testing.T) {
	svc, accounts, _ := newTestService(t)
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	created, err := svc.AddReminder(identity, validInput())
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated reminder id")
	}

	listed, err := svc.ListReminders(identity)
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(listed))
	}
	got := listed[0]
	if got.Name != "Aspirin" || got.Dosage != "81mg" || got.FrequencyInDays != 1 {
		t.Errorf("listed reminder does not match input: %+v", got)
	}
	if len(got.TimesPerDay) != 1 || got.TimesPerDay[0] != "08:00" {
		t.Errorf("unexpected timesPerDay: %v", got.TimesPerDay)
	}

	acc, _ := accounts.GetByID("u1")
	if len(acc.Reminders) != 1 || acc.Reminders[0] != created.ID {
		t.Errorf("reminder id not appended to account: %v", acc.Reminders)
	}
}

func TestListRemindersPreservesReferenceOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	first, err := svc.AddReminder(identity, validInput())
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}
	second := validInput()
	second.Name = "Vitamin D"
	created2, err := svc.AddReminder(identity, second)
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}

	listed, err := svc.ListReminders(identity)
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != first.ID || listed[1].ID != created2.ID {
		t.Errorf("reminders out of reference order: %+v", listed)
	}
}

func TestAddReminderValidation(t *testing.T) {
	svc, _, reminders := newTestService(t)
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	cases := []struct {
		name   string
		mutate func(*models.ReminderInput)
	}{
		{"empty name", func(in *models.ReminderInput) { in.Name = "  " }},
		{"empty dosage", func(in *models.ReminderInput) { in.Dosage = "" }},
		{"no times", func(in *models.ReminderInput) { in.TimesPerDay = nil }},
		{"malformed time", func(in *models.ReminderInput) { in.TimesPerDay = []string{"8 o'clock"} }},
		{"zero frequency", func(in *models.ReminderInput) { in.FrequencyInDays = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := svc.AddReminder(identity, input)
			var validation ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if reminders.Len() != 0 {
		t.Errorf("invalid payloads must not persist reminders, stored %d", reminders.Len())
	}
}

func TestAddReminderAccountVanished(t *testing.T) {
	svc, _, reminders := newTestService(t)

	_, err := svc.AddReminder(utils.Identity{UID: "ghost", Email: "g@x.com"}, validInput())
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	// The reminder document is written before the account append and is left
	// behind as a tolerated orphan.
	if reminders.Len() != 1 {
		t.Errorf("expected orphan reminder document, stored %d", reminders.Len())
	}
}

func TestUpdateReminder(t *testing.T) {
	svc, _, _ := newTestService(t)
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	created, err := svc.AddReminder(identity, validInput())
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}

	input := models.ReminderInput{
		Name:            "Ibuprofen",
		Dosage:          "200mg",
		TimesPerDay:     []string{"09:00", "21:00"},
		FrequencyInDays: 2,
	}
	updated, err := svc.UpdateReminder(identity, created.ID, input)
	if err != nil {
		t.Fatalf("UpdateReminder failed: %v", err)
	}
	if updated.Name != "Ibuprofen" || updated.Dosage != "200mg" || updated.FrequencyInDays != 2 {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt must be immutable: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}
}

func TestUpdateReminderNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateReminder(utils.Identity{UID: "u1", Email: "a@x.com"}, "missing", validInput())
	if !errors.Is(err, ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}

func TestDeleteReminder(t *testing.T) {
	svc, accounts, reminders := newTestService(t)
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	created, err := svc.AddReminder(identity, validInput())
	if err != nil {
		t.Fatalf("AddReminder failed: %v", err)
	}

	if err := svc.DeleteReminder(identity, created.ID); err != nil {
		t.Fatalf("DeleteReminder failed: %v", err)
	}
	if reminders.Len() != 0 {
		t.Errorf("reminder document not deleted")
	}
	acc, _ := accounts.GetByID("u1")
	if len(acc.Reminders) != 0 {
		t.Errorf("reminder reference not removed: %v", acc.Reminders)
	}
}

func TestDeleteNonexistentReminderSucceeds(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.DeleteReminder(utils.Identity{UID: "u1", Email: "a@x.com"}, "never-existed"); err != nil {
		t.Fatalf("deleting an unknown reminder id must be a no-op, got %v", err)
	}
}

func TestDeleteReminderAccountNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteReminder(utils.Identity{UID: "ghost", Email: "g@x.com"}, "anything")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
