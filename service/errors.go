package service

import (
	"errors"
	"fmt"

	"placement_portal/model"
)

// Failure taxonomy. Handlers map these onto HTTP statuses; services never
// reach for net/http themselves.
var (
	// validation
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidRole       = errors.New("invalid role")
	ErrAdminRegistration = errors.New("admin accounts cannot be self-registered")
	ErrProfileRequired   = errors.New("profile must be completed first")

	// authentication
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no valid session")

	// authorization
	ErrNotApproved = errors.New("account pending approval")
	ErrForbidden   = errors.New("forbidden")

	// integrity
	ErrNotFound       = errors.New("not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrJobNotOpen     = errors.New("job is not open for applications")
)

// InvalidTransitionError reports a rejected application status change.
type InvalidTransitionError struct {
	From model.ApplicationStatus
	To   model.ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move application from %s to %s", e.From, e.To)
}
