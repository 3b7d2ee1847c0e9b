// services/reminder/doses.go
package reminder

import (
	"fmt"
	"time"

	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"

	"go.uber.org/zap"
)

// MarkDoseTaken upserts the dose record keyed by (timeOfDay, calendar date of
// scheduledFor). Marking an already-marked dose overwrites the record, so the
// operation is idempotent per scheduled time per calendar day.
func (s *DefaultReminderService) MarkDoseTaken(reminderID, timeOfDay string, scheduledFor time.Time) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	if rem == nil {
		return nil, ErrReminderNotFound
	}

	record := models.DoseRecord{
		Time:         timeOfDay,
		TakenAt:      s.now(),
		ScheduledFor: scheduledFor,
	}

	replaced := false
	doseLog := make([]models.DoseRecord, 0, len(rem.DoseLog)+1)
	for _, d := range rem.DoseLog {
		if d.MatchesKey(timeOfDay, scheduledFor) {
			doseLog = append(doseLog, record)
			replaced = true
			continue
		}
		doseLog = append(doseLog, d)
	}
	if !replaced {
		doseLog = append(doseLog, record)
	}

	if err := s.Repo.SetDoseLog(reminderID, doseLog); err != nil {
		return nil, fmt.Errorf("failed to store dose log: %w", err)
	}
	rem.DoseLog = doseLog

	utils.GetLogger().Debug("dose marked taken",
		zap.String("reminderID", reminderID),
		zap.String("time", timeOfDay),
		zap.Time("scheduledFor", scheduledFor))
	return rem, nil
}

// UnmarkDoseTaken removes any dose record matching (timeOfDay, calendar date
// of scheduledFor). Removing an absent key is a no-op.
func (s *DefaultReminderService) UnmarkDoseTaken(reminderID, timeOfDay string, scheduledFor time.Time) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	if rem == nil {
		return nil, ErrReminderNotFound
	}

	doseLog := make([]models.DoseRecord, 0, len(rem.DoseLog))
	for _, d := range rem.DoseLog {
		if d.MatchesKey(timeOfDay, scheduledFor) {
			continue
		}
		doseLog = append(doseLog, d)
	}

	if err := s.Repo.SetDoseLog(reminderID, doseLog); err != nil {
		return nil, fmt.Errorf("failed to store dose log: %w", err)
	}
	rem.DoseLog = doseLog

	utils.GetLogger().Debug("dose unmarked",
		zap.String("reminderID", reminderID),
		zap.String("time", timeOfDay),
		zap.Time("scheduledFor", scheduledFor))
	return rem, nil
}
