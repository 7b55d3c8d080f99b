package service

import (
	"context"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type borrowingService struct {
	loanRepo repository.LoanRepository
	copyRepo repository.CopyRepository
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

func NewBorrowingService(
	loanRepo repository.LoanRepository,
	copyRepo repository.CopyRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) BorrowingService {
	return &borrowingService{
		loanRepo: loanRepo,
		copyRepo: copyRepo,
		bookRepo: bookRepo,
		userRepo: userRepo,
	}
}

// Borrow checks that the caller exists, then hands the copy-scoped
// check-then-act to the loan repository's transaction. A failure at any
// step leaves copy and ledger state untouched. The returned record is
// enriched with catalog metadata for the caller, a read-side concern
// outside the transaction.
func (s *borrowingService) Borrow(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	rec, err := s.loanRepo.Borrow(ctx, userID, copyID)
	if err != nil {
		var unavailable *domain.CopyNotAvailableError
		switch {
		case errors.As(err, &unavailable),
			errors.Is(err, domain.ErrAlreadyBorrowedBySelf),
			errors.Is(err, domain.ErrAlreadyBorrowedByOther),
			errors.Is(err, domain.ErrCopyNotFound):
			logger.Info("Borrow rejected", "user_id", userID, "copy_id", copyID, "reason", err)
		default:
			logger.Error("Borrow failed", "user_id", userID, "copy_id", copyID, "error", err)
		}
		return nil, err
	}

	s.enrich(ctx, rec)
	logger.Info("Copy borrowed", "user_id", userID, "copy_id", copyID, "record_id", rec.ID)
	return rec, nil
}

// Return closes the caller's open loan on the copy. Only the borrower on
// the open record may close it.
func (s *borrowingService) Return(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	rec, err := s.loanRepo.Return(ctx, userID, copyID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveLoan), errors.Is(err, domain.ErrNotBorrower):
			logger.Info("Return rejected", "user_id", userID, "copy_id", copyID, "reason", err)
		default:
			logger.Error("Return failed", "user_id", userID, "copy_id", copyID, "error", err)
		}
		return nil, err
	}

	s.enrich(ctx, rec)
	logger.Info("Copy returned", "user_id", userID, "copy_id", copyID, "record_id", rec.ID)
	return rec, nil
}

func (s *borrowingService) GetHistory(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	return s.loanRepo.ListByUser(ctx, userID)
}

func (s *borrowingService) GetActiveLoans(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	return s.loanRepo.ListActiveByUser(ctx, userID)
}

// IsAvailable answers false for an unknown copy id rather than erroring;
// callers probing availability treat "unknown" the same as "not available".
func (s *borrowingService) IsAvailable(ctx context.Context, copyID int32) (bool, error) {
	return s.copyRepo.IsAvailable(ctx, copyID)
}

func (s *borrowingService) ListAvailable(ctx context.Context) ([]domain.Copy, error) {
	return s.copyRepo.ListAvailable(ctx)
}

// enrich fills in the book metadata on a freshly written loan record.
// Failures here do not fail the operation; the state change already
// committed.
func (s *borrowingService) enrich(ctx context.Context, rec *domain.LoanRecord) {
	c, err := s.copyRepo.GetByID(ctx, rec.CopyID)
	if err != nil {
		return
	}
	rec.ISBN = c.ISBN
	if b, err := s.bookRepo.GetByISBN(ctx, c.ISBN); err == nil {
		rec.BookName = b.Name
	}
}
