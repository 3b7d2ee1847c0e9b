package reminder

import "errors"

var (
	// ErrAccountNotFound signals that no account matches the caller's identity.
	ErrAccountNotFound = errors.New("account not found")
	// ErrReminderNotFound signals that no reminder matches the given id.
	ErrReminderNotFound = errors.New("reminder not found")
)

// ValidationError reports an invalid reminder payload.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
