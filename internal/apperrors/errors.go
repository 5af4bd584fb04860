// Package apperrors defines the error taxonomy returned by the session
// lifecycle manager. Handlers translate these into transport status codes;
// the deadline scheduler only ever logs them.
package apperrors

import "fmt"

// ConflictError reports that a conflicting live resource already exists,
// e.g. starting a session for a group that already has one in flight.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidPhaseError reports an operation attempted outside its valid
// session phase or past the phase deadline.
type InvalidPhaseError struct {
	Operation string
	Status    string
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("%s is not allowed while session status is %q", e.Operation, e.Status)
}

// ForbiddenError reports that the caller lacks the required role for an
// initiator-only operation.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// UnknownProposalError reports a vote for a proposal that does not belong
// to the session, or is no longer active.
type UnknownProposalError struct {
	SessionID  int64
	ProposalID int64
}

func (e *UnknownProposalError) Error() string {
	return fmt.Sprintf("proposal %d is not an active proposal of session %d", e.ProposalID, e.SessionID)
}

// DuplicateProposalError reports that the meal is already actively proposed
// in the session.
type DuplicateProposalError struct {
	SessionID int64
	MealID    int64
}

func (e *DuplicateProposalError) Error() string {
	return fmt.Sprintf("meal %d is already proposed in session %d", e.MealID, e.SessionID)
}
