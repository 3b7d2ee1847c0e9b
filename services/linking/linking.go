package linking

import (
	"fmt"
	"strings"

	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"

	"go.uber.org/zap"
)

// LinkCaregiver establishes a caregiver relationship: the caller gains a
// caregiver reference and the caregiver gains a patient reference. The two
// writes use $addToSet, so a concurrent duplicate request cannot produce more
// than one reference on either side.
func (s *DefaultLinkingService) LinkCaregiver(identity utils.Identity, caregiverEmail string) (*models.LinkConfirmation, error) {
	patient, caregiver, err := s.resolvePair(identity, caregiverEmail)
	if err != nil {
		return nil, err
	}

	if contains(patient.LinkedCaregivers, caregiver.ID) {
		return nil, AlreadyLinkedError{Role: "caregiver"}
	}

	if err := s.Repo.AddCaregiver(patient.ID, caregiver.ID); err != nil {
		return nil, fmt.Errorf("failed to add caregiver reference: %w", err)
	}
	if err := s.Repo.AddPatient(caregiver.ID, patient.ID); err != nil {
		return nil, fmt.Errorf("failed to add patient reference: %w", err)
	}

	utils.GetLogger().Info("caregiver linked",
		zap.String("patientID", patient.ID), zap.String("caregiverID", caregiver.ID))

	return &models.LinkConfirmation{
		Message:     "Caregiver linked successfully",
		Counterpart: models.AccountSummary{ID: caregiver.ID, Email: caregiver.Email},
	}, nil
}

// LinkPatient is the mirror operation: the caller gains a patient reference
// and the patient gains a caregiver reference.
func (s *DefaultLinkingService) LinkPatient(identity utils.Identity, patientEmail string) (*models.LinkConfirmation, error) {
	caregiver, patient, err := s.resolvePair(identity, patientEmail)
	if err != nil {
		return nil, err
	}

	if contains(caregiver.LinkedPatients, patient.ID) {
		return nil, AlreadyLinkedError{Role: "patient"}
	}

	if err := s.Repo.AddPatient(caregiver.ID, patient.ID); err != nil {
		return nil, fmt.Errorf("failed to add patient reference: %w", err)
	}
	if err := s.Repo.AddCaregiver(patient.ID, caregiver.ID); err != nil {
		return nil, fmt.Errorf("failed to add caregiver reference: %w", err)
	}

	utils.GetLogger().Info("patient linked",
		zap.String("caregiverID", caregiver.ID), zap.String("patientID", patient.ID))

	return &models.LinkConfirmation{
		Message:     "Patient linked successfully",
		Counterpart: models.AccountSummary{ID: patient.ID, Email: patient.Email},
	}, nil
}

// resolvePair loads the caller by uid and the counterpart by lowercased
// email, rejecting self-links.
func (s *DefaultLinkingService) resolvePair(identity utils.Identity, counterpartEmail string) (*models.Account, *models.Account, error) {
	self, err := s.Repo.GetByID(identity.UID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account: %w", err)
	}
	counterpart, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(counterpartEmail)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	if self == nil || counterpart == nil {
		return nil, nil, ErrNotFound
	}
	if self.ID == counterpart.ID {
		return nil, nil, ErrSelfLink
	}
	return self, counterpart, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
