package repository

import (
	"context"

	"library-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	TouchLastLogin(ctx context.Context, id int32) error
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	GetByName(ctx context.Context, name string) (*domain.Book, error)
	GetByAuthor(ctx context.Context, author string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
}

type CopyRepository interface {
	Create(ctx context.Context, copy *domain.Copy) error
	GetByID(ctx context.Context, id int32) (*domain.Copy, error)
	// IsAvailable reports whether the copy is in the AVAILABLE state. An
	// unknown copy id yields false, not an error.
	IsAvailable(ctx context.Context, id int32) (bool, error)
	// ListAvailable returns every AVAILABLE copy with its book populated.
	ListAvailable(ctx context.Context) ([]domain.Copy, error)
	ListByISBN(ctx context.Context, isbn string) ([]domain.Copy, error)
	// ListStatusMismatches re-derives the status projection from the ledger
	// and returns every copy whose cached status diverges from it.
	ListStatusMismatches(ctx context.Context) ([]domain.CopyAudit, error)
}

// LoanRepository owns the loan ledger and the transactional borrow/return
// state machine. Borrow and Return run their check-then-act against the
// copy row and the open-loan lookup inside a single transaction holding a
// row lock on the copy, so concurrent calls for the same copy serialize.
type LoanRepository interface {
	// Borrow moves the copy AVAILABLE -> BORROWED and opens a loan record,
	// atomically. Fails with domain.ErrCopyNotFound,
	// *domain.CopyNotAvailableError, domain.ErrAlreadyBorrowedBySelf or
	// domain.ErrAlreadyBorrowedByOther without mutating anything.
	Borrow(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error)
	// Return closes the open loan record and moves the copy back to
	// AVAILABLE, atomically. Fails with domain.ErrNoActiveLoan or
	// domain.ErrNotBorrower without mutating anything.
	Return(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error)
	// ListByUser returns all of a user's loans, newest borrowed_at first.
	ListByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error)
	// ListActiveByUser returns the user's open loans.
	ListActiveByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error)
}
