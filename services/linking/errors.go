package linking

import "errors"

var (
	// ErrNotFound signals that the caller or the counterpart account is missing.
	ErrNotFound = errors.New("account not found")
	// ErrSelfLink signals an attempt to link an account to itself.
	ErrSelfLink = errors.New("cannot link yourself")
)

// AlreadyLinkedError signals that the relation already exists in the
// direction being established.
type AlreadyLinkedError struct {
	// Role is the counterpart's role: "caregiver" or "patient".
	Role string
}

func (e AlreadyLinkedError) Error() string {
	return e.Role + " already linked"
}
