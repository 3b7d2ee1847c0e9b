package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kpasag/MedTime/handlers"
	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/routes"
	"github.com/kpasag/MedTime/services/account"
	"github.com/kpasag/MedTime/services/drug"
	"github.com/kpasag/MedTime/services/linking"
	"github.com/kpasag/MedTime/services/reminder"
	"github.com/kpasag/MedTime/testutil"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
)

// tokenVerifier maps bearer tokens to identities, standing in for the
// identity provider.
type tokenVerifier map[string]utils.Identity

func (v tokenVerifier) Verify(ctx context.Context, token string) (utils.Identity, error) {
	identity, ok := v[token]
	if !ok {
		return utils.Identity{}, context.Canceled
	}
	return identity, nil
}

type testEnv struct {
	router   *gin.Engine
	accounts *testutil.MemAccountRepo
}

func newTestEnv(t *testing.T, verifier utils.IdentityVerifier) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts := testutil.NewMemAccountRepo()
	reminders := testutil.NewMemReminderRepo()

	accountService := &account.DefaultAccountService{Repo: accounts, Reminders: reminders}
	reminderService := &reminder.DefaultReminderService{Repo: reminders, Accounts: accounts}
	linkingService := &linking.DefaultLinkingService{Repo: accounts}

	drugUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"brand_name":"Aspirin"},{"brand_name":"aspirin"}]}`))
	}))
	t.Cleanup(drugUpstream.Close)
	drugService := &drug.DefaultSuggestionService{BaseURL: drugUpstream.URL, Limit: 20}

	accountHandler := handlers.NewAccountHandler(accountService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	linkingHandler := handlers.NewLinkingHandler(linkingService)
	drugHandler := handlers.NewDrugHandler(drugService)

	hb := &handlers.HandlerBundle{
		Verifier: verifier,

		CreateAccountHandler: accountHandler.CreateAccountHandler,
		GetAccountHandler:    accountHandler.GetAccountHandler,

		ListRemindersHandler:   reminderHandler.ListRemindersHandler,
		AddReminderHandler:     reminderHandler.AddReminderHandler,
		UpdateReminderHandler:  reminderHandler.UpdateReminderHandler,
		DeleteReminderHandler:  reminderHandler.DeleteReminderHandler,
		MarkDoseTakenHandler:   reminderHandler.MarkDoseTakenHandler,
		UnmarkDoseTakenHandler: reminderHandler.UnmarkDoseTakenHandler,

		LinkCaregiverHandler: linkingHandler.LinkCaregiverHandler,
		LinkPatientHandler:   linkingHandler.LinkPatientHandler,

		DrugSuggestHandler: drugHandler.SuggestHandler,
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return &testEnv{router: router, accounts: accounts}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		payload = bytes.NewBuffer(encoded)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAccountLifecycle(t *testing.T) {
	verifier := tokenVerifier{"t1": {UID: "u1", Email: "a@x.com"}}
	env := newTestEnv(t, verifier)

	// Self lookup before sign-up: the account does not exist yet.
	if w := env.do(t, http.MethodGet, "/api/accounts/me", "t1", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before account creation, got %d", w.Code)
	}

	if w := env.do(t, http.MethodPost, "/api/accounts", "t1", nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodPost, "/api/accounts", "t1", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d", w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/accounts/me", "t1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view models.AccountView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode account view: %v", err)
	}
	if view.ID != "u1" || view.Email != "a@x.com" {
		t.Errorf("unexpected account view: %+v", view)
	}
}

func TestReminderScenario(t *testing.T) {
	verifier := tokenVerifier{"t1": {UID: "u1", Email: "a@x.com"}}
	env := newTestEnv(t, verifier)

	if w := env.do(t, http.MethodPost, "/api/accounts", "t1", nil); w.Code != http.StatusCreated {
		t.Fatalf("account creation failed: %d", w.Code)
	}

	// Add a reminder and expect a generated id back.
	w := env.do(t, http.MethodPost, "/api/reminders", "t1", models.ReminderInput{
		Name:            "Aspirin",
		Dosage:          "81mg",
		TimesPerDay:     []string{"08:00"},
		FrequencyInDays: 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode reminder: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated reminder id")
	}

	// Mark today's 08:00 dose taken and expect one record for that key.
	today := time.Now().UTC().Truncate(24 * time.Hour).Add(8 * time.Hour)
	w = env.do(t, http.MethodPost, "/api/reminders/"+created.ID+"/taken", "t1", models.DoseInput{
		Time:         "08:00",
		ScheduledFor: today,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("mark dose: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var marked models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &marked); err != nil {
		t.Fatalf("failed to decode reminder: %v", err)
	}
	if len(marked.DoseLog) != 1 || marked.DoseLog[0].Time != "08:00" {
		t.Fatalf("expected one dose record for 08:00, got %+v", marked.DoseLog)
	}

	// Delete the reminder; the list returns to empty.
	if w := env.do(t, http.MethodDelete, "/api/reminders/"+created.ID, "t1", nil); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/accounts/me/reminders", "t1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listed []models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode reminder list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected empty reminder list, got %+v", listed)
	}
}

func TestReminderValidationOverHTTP(t *testing.T) {
	verifier := tokenVerifier{"t1": {UID: "u1", Email: "a@x.com"}}
	env := newTestEnv(t, verifier)
	env.do(t, http.MethodPost, "/api/accounts", "t1", nil)

	w := env.do(t, http.MethodPost, "/api/reminders", "t1", models.ReminderInput{
		Name:            "",
		Dosage:          "81mg",
		TimesPerDay:     []string{"08:00"},
		FrequencyInDays: 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLinkingOverHTTP(t *testing.T) {
	verifier := tokenVerifier{
		"t1": {UID: "u1", Email: "a@x.com"},
		"t2": {UID: "u2", Email: "b@x.com"},
	}
	env := newTestEnv(t, verifier)
	env.do(t, http.MethodPost, "/api/accounts", "t1", nil)
	env.do(t, http.MethodPost, "/api/accounts", "t2", nil)

	w := env.do(t, http.MethodPost, "/api/accounts/me/link-caregiver", "t1", models.LinkRequest{Email: "b@x.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("link caregiver: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var confirmation models.LinkConfirmation
	if err := json.Unmarshal(w.Body.Bytes(), &confirmation); err != nil {
		t.Fatalf("failed to decode confirmation: %v", err)
	}
	if confirmation.Counterpart.Email != "b@x.com" {
		t.Errorf("unexpected counterpart: %+v", confirmation.Counterpart)
	}

	if w := env.do(t, http.MethodPost, "/api/accounts/me/link-caregiver", "t1", models.LinkRequest{Email: "a@x.com"}); w.Code != http.StatusBadRequest {
		t.Errorf("self link: expected 400, got %d", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/accounts/me/link-patient", "t2", models.LinkRequest{Email: "a@x.com"}); w.Code != http.StatusBadRequest {
		t.Errorf("reversed relink: expected 400, got %d", w.Code)
	}
}

func TestDrugSuggestOverHTTP(t *testing.T) {
	verifier := tokenVerifier{"t1": {UID: "u1", Email: "a@x.com"}}
	env := newTestEnv(t, verifier)

	w := env.do(t, http.MethodGet, "/api/drugs/suggest?q=aspirin", "t1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if len(payload.Suggestions) != 1 || payload.Suggestions[0] != "Aspirin" {
		t.Errorf("unexpected suggestions: %v", payload.Suggestions)
	}

	if w := env.do(t, http.MethodGet, "/api/drugs/suggest?q=aspirin", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated: expected 401, got %d", w.Code)
	}
}
