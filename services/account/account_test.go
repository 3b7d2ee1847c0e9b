package account

import (
	"errors"
	"testing"

	"github.com/kpasag/MedTime/testutil"
	"github.com/kpasag/MedTime/utils"
)

func newTestService() (*DefaultAccountService, *testutil.MemAccountRepo, *testutil.MemReminderRepo) {
	accounts := testutil.NewMemAccountRepo()
	reminders := testutil.NewMemReminderRepo()
	svc := &DefaultAccountService{Repo: accounts, Reminders: reminders}
	return svc, accounts, reminders
}

func TestCreateAccount(t *testing.T) {
	svc, accounts, _ := newTestService()
	identity := utils.Identity{UID: "u1", Email: "A@X.com"}

	acc, err := svc.CreateAccount(identity)
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if acc.ID != "u1" {
		t.Errorf("expected id u1, got %q", acc.ID)
	}
	if acc.Email != "a@x.com" {
		t.Errorf("expected lowercased email, got %q", acc.Email)
	}
	if len(acc.Reminders) != 0 || len(acc.LinkedCaregivers) != 0 || len(acc.LinkedPatients) != 0 {
		t.Errorf("expected empty reference sets, got %+v", acc)
	}
	if accounts.Len() != 1 {
		t.Errorf("expected 1 stored account, got %d", accounts.Len())
	}
}

func TestCreateAccountTwice(t *testing.T) {
	svc, accounts, _ := newTestService()
	identity := utils.Identity{UID: "u1", Email: "a@x.com"}

	if _, err := svc.CreateAccount(identity); err != nil {
		t.Fatalf("first CreateAccount failed: %v", err)
	}
	_, err := svc.CreateAccount(identity)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if accounts.Len() != 1 {
		t.Errorf("account count changed on duplicate create: %d", accounts.Len())
	}
}

func TestGetAccountNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetAccount(utils.Identity{UID: "missing", Email: "m@x.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAccountExpandsReferences(t *testing.T) {
	svc, accounts, reminders := newTestService()

	self := utils.Identity{UID: "u1", Email: "a@x.com"}
	other := utils.Identity{UID: "u2", Email: "b@x.com"}
	if _, err := svc.CreateAccount(self); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if _, err := svc.CreateAccount(other); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	rem := testutil.NewReminder("r1", "Aspirin", "81mg", []string{"08:00"}, 1)
	if err := reminders.Create(&rem); err != nil {
		t.Fatalf("seeding reminder failed: %v", err)
	}
	// Reference one resolvable reminder and one dangling id.
	if err := accounts.PushReminder("u1", "r1"); err != nil {
		t.Fatalf("PushReminder failed: %v", err)
	}
	if err := accounts.PushReminder("u1", "gone"); err != nil {
		t.Fatalf("PushReminder failed: %v", err)
	}
	if err := accounts.AddCaregiver("u1", "u2"); err != nil {
		t.Fatalf("AddCaregiver failed: %v", err)
	}

	view, err := svc.GetAccount(self)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if len(view.Reminders) != 1 || view.Reminders[0].ID != "r1" {
		t.Errorf("expected one resolved reminder r1, got %+v", view.Reminders)
	}
	if len(view.LinkedCaregivers) != 1 || view.LinkedCaregivers[0].Email != "b@x.com" {
		t.Errorf("expected caregiver summary for u2, got %+v", view.LinkedCaregivers)
	}
	if len(view.LinkedPatients) != 0 {
		t.Errorf("expected no linked patients, got %+v", view.LinkedPatients)
	}
}
