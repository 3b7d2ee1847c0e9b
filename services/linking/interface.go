package linking

import (
	accountRepo "github.com/kpasag/MedTime/database/repository/account"
	"github.com/kpasag/MedTime/models"
	"github.com/kpasag/MedTime/utils"
)

// LinkingService establishes symmetric caregiver/patient relationships.
// There is no unlink; a link, once made, is permanent.
type LinkingService interface {
	// LinkCaregiver links the caller (as patient) to the caregiver with the
	// given email.
	LinkCaregiver(identity utils.Identity, caregiverEmail string) (*models.LinkConfirmation, error)
	// LinkPatient links the caller (as caregiver) to the patient with the
	// given email.
	LinkPatient(identity utils.Identity, patientEmail string) (*models.LinkConfirmation, error)
}

// DefaultLinkingService is the production implementation.
type DefaultLinkingService struct {
	Repo accountRepo.AccountRepository
}
