// models/reminder.go
package models

import "time"

// Reminder is a named medication schedule with dosage, one or more daily
// times, and a repeat cadence measured in days.
type Reminder struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Dosage string `bson:"dosage" json:"dosage"`

	// TimesPerDay holds "HH:MM" time-of-day strings, at least one.
	TimesPerDay []string `bson:"timesPerDay" json:"timesPerDay"`

	// FrequencyInDays is the repeat cadence, always >= 1.
	FrequencyInDays int `bson:"frequencyInDays" json:"frequencyInDays"`

	// DoseLog holds at most one record per (time, calendar date of
	// ScheduledFor) key. Marking an already-present key overwrites it.
	DoseLog []DoseRecord `bson:"doseLog" json:"doseLog"`

	// NextScheduledDate is stored for display; nothing evaluates it against
	// wall-clock time.
	NextScheduledDate time.Time `bson:"nextScheduledDate" json:"nextScheduledDate"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DoseRecord is evidence that a specific scheduled instance of a reminder was
// marked taken.
type DoseRecord struct {
	// Time is the scheduled time-of-day string, e.g. "09:00".
	Time string `bson:"time" json:"time"`
	// TakenAt is the instant the dose was marked taken.
	TakenAt time.Time `bson:"takenAt" json:"takenAt"`
	// ScheduledFor is the specific date/time instance the dose was scheduled for.
	ScheduledFor time.Time `bson:"scheduledFor" json:"scheduledFor"`
}

// MatchesKey reports whether the record covers the given dose key. Two
// records match iff the time strings are identical and the calendar dates of
// their ScheduledFor values (compared in UTC) are identical, regardless of
// the time-of-day portion.
func (d DoseRecord) MatchesKey(timeOfDay string, scheduledFor time.Time) bool {
	return d.Time == timeOfDay && SameCalendarDay(d.ScheduledFor, scheduledFor)
}

// SameCalendarDay reports whether two instants fall on the same UTC calendar day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
