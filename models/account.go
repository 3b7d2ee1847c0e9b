// models/account.go
package models

import "time"

// Account represents a registered user, acting as patient, caregiver, or both.
// The ID is issued by the identity provider and is immutable; email is stored
// lowercased and is unique.
type Account struct {
	ID    string `bson:"id" json:"id"`
	Email string `bson:"email" json:"email"`

	// Reminders holds the ids of the reminders owned by this account, in
	// insertion order. Reminder documents live in their own collection.
	Reminders []string `bson:"reminders" json:"reminders"`

	// LinkedCaregivers and LinkedPatients hold account ids with set
	// semantics: never the account's own id, never duplicates.
	LinkedCaregivers []string `bson:"linkedCaregivers" json:"linkedCaregivers"`
	LinkedPatients   []string `bson:"linkedPatients" json:"linkedPatients"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AccountSummary is the reduced shape linked accounts are expanded to.
type AccountSummary struct {
	ID    string `bson:"id" json:"id"`
	Email string `bson:"email" json:"email"`
}

// AccountView is an account with its reference sets resolved to documents.
// References that fail to resolve are omitted rather than failing the read.
type AccountView struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Reminders        []Reminder       `json:"reminders"`
	LinkedCaregivers []AccountSummary `json:"linkedCaregivers"`
	LinkedPatients   []AccountSummary `json:"linkedPatients"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// LinkConfirmation is returned by a successful link operation.
type LinkConfirmation struct {
	Message     string         `json:"message"`
	Counterpart AccountSummary `json:"counterpart"`
}
