package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy of the borrowing engine and its collaborators. Every
// precondition violation surfaces as one of these; the API layer maps them
// to stable machine codes and HTTP statuses.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrCopyNotFound = errors.New("copy not found")
	ErrBookNotFound = errors.New("book not found")
	ErrNoActiveLoan = errors.New("no active loan for this copy")

	// ErrNotBorrower deliberately does not say who the actual borrower is.
	ErrNotBorrower = errors.New("copy was not borrowed by this user")

	ErrAlreadyBorrowedBySelf  = errors.New("copy already borrowed by this user")
	ErrAlreadyBorrowedByOther = errors.New("copy already borrowed by another user")

	ErrPhoneRegistered    = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrDuplicateBook      = errors.New("book already exists")
)

// CopyNotAvailableError reports a borrow attempt against a copy that is not
// in the AVAILABLE state, surfacing the current status for diagnostics.
type CopyNotAvailableError struct {
	CopyID int32
	Status CopyStatus
}

func (e *CopyNotAvailableError) Error() string {
	return fmt.Sprintf("copy %d is not available (status %s)", e.CopyID, e.Status)
}
