package service_test

import (
	"context"
	"testing"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func newBorrowingService() (*MockLoanRepo, *MockCopyRepo, *MockBookRepo, *MockUserRepo, service.BorrowingService) {
	loanRepo := new(MockLoanRepo)
	copyRepo := new(MockCopyRepo)
	bookRepo := new(MockBookRepo)
	userRepo := new(MockUserRepo)
	svc := service.NewBorrowingService(loanRepo, copyRepo, bookRepo, userRepo)
	return loanRepo, copyRepo, bookRepo, userRepo, svc
}

func TestBorrowingService_Borrow(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 3, PhoneNumber: "0912345678", Name: "Alex"}

	t.Run("Success", func(t *testing.T) {
		loanRepo, copyRepo, bookRepo, userRepo, svc := newBorrowingService()

		userRepo.On("GetByID", ctx, int32(3)).Return(user, nil)
		loanRepo.On("Borrow", ctx, int32(3), int32(7)).
			Return(&domain.LoanRecord{ID: 42, UserID: 3, CopyID: 7, BorrowedAt: time.Now()}, nil)
		copyRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.Copy{ID: 7, ISBN: "9780134190440", Status: domain.CopyStatusBorrowed}, nil)
		bookRepo.On("GetByISBN", ctx, "9780134190440").
			Return(&domain.Book{ISBN: "9780134190440", Name: "The Go Programming Language"}, nil)

		rec, err := svc.Borrow(ctx, 3, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), rec.ID)
		assert.True(t, rec.Open())
		// Read-side enrichment for the caller.
		assert.Equal(t, "9780134190440", rec.ISBN)
		assert.Equal(t, "The Go Programming Language", rec.BookName)
	})

	t.Run("UserNotFoundCheckedFirst", func(t *testing.T) {
		loanRepo, _, _, userRepo, svc := newBorrowingService()

		userRepo.On("GetByID", ctx, int32(999)).Return(nil, domain.ErrUserNotFound)

		rec, err := svc.Borrow(ctx, 999, 7)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, rec)
		// The engine never reached the state machine.
		loanRepo.AssertNotCalled(t, "Borrow", ctx, int32(999), int32(7))
	})

	t.Run("CopyNotFound", func(t *testing.T) {
		loanRepo, _, _, userRepo, svc := newBorrowingService()

		userRepo.On("GetByID", ctx, int32(3)).Return(user, nil)
		loanRepo.On("Borrow", ctx, int32(3), int32(999)).Return(nil, domain.ErrCopyNotFound)

		rec, err := svc.Borrow(ctx, 3, 999)
		assert.ErrorIs(t, err, domain.ErrCopyNotFound)
		assert.Nil(t, rec)
	})

	t.Run("NotAvailableSurfacesStatus", func(t *testing.T) {
		loanRepo, _, _, userRepo, svc := newBorrowingService()

		userRepo.On("GetByID", ctx, int32(3)).Return(user, nil)
		loanRepo.On("Borrow", ctx, int32(3), int32(7)).
			Return(nil, &domain.CopyNotAvailableError{CopyID: 7, Status: domain.CopyStatusBorrowed})

		rec, err := svc.Borrow(ctx, 3, 7)
		assert.Error(t, err)
		assert.Nil(t, rec)
		assert.Contains(t, err.Error(), "BORROWED")
	})
}

func TestBorrowingService_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		loanRepo, copyRepo, bookRepo, _, svc := newBorrowingService()

		borrowedAt := time.Now().Add(-24 * time.Hour)
		returnedAt := time.Now()
		loanRepo.On("Return", ctx, int32(3), int32(7)).
			Return(&domain.LoanRecord{ID: 42, UserID: 3, CopyID: 7, BorrowedAt: borrowedAt, ReturnedAt: &returnedAt}, nil)
		copyRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.Copy{ID: 7, ISBN: "9780134190440", Status: domain.CopyStatusAvailable}, nil)
		bookRepo.On("GetByISBN", ctx, "9780134190440").
			Return(&domain.Book{ISBN: "9780134190440", Name: "The Go Programming Language"}, nil)

		rec, err := svc.Return(ctx, 3, 7)
		assert.NoError(t, err)
		assert.False(t, rec.Open())
		assert.True(t, rec.BorrowedAt.Before(*rec.ReturnedAt))
	})

	t.Run("NotBorrower", func(t *testing.T) {
		loanRepo, _, _, _, svc := newBorrowingService()

		loanRepo.On("Return", ctx, int32(4), int32(7)).Return(nil, domain.ErrNotBorrower)

		rec, err := svc.Return(ctx, 4, 7)
		assert.ErrorIs(t, err, domain.ErrNotBorrower)
		assert.Nil(t, rec)
	})

	t.Run("NoActiveLoan", func(t *testing.T) {
		loanRepo, _, _, _, svc := newBorrowingService()

		loanRepo.On("Return", ctx, int32(3), int32(8)).Return(nil, domain.ErrNoActiveLoan)

		rec, err := svc.Return(ctx, 3, 8)
		assert.ErrorIs(t, err, domain.ErrNoActiveLoan)
		assert.Nil(t, rec)
	})
}

func TestBorrowingService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("HistoryPassesThrough", func(t *testing.T) {
		loanRepo, _, _, _, svc := newBorrowingService()

		records := []domain.LoanRecord{{ID: 2, UserID: 3}, {ID: 1, UserID: 3}}
		loanRepo.On("ListByUser", ctx, int32(3)).Return(records, nil)

		got, err := svc.GetHistory(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("ActiveLoansPassesThrough", func(t *testing.T) {
		loanRepo, _, _, _, svc := newBorrowingService()

		records := []domain.LoanRecord{{ID: 2, UserID: 3}}
		loanRepo.On("ListActiveByUser", ctx, int32(3)).Return(records, nil)

		got, err := svc.GetActiveLoans(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("IsAvailableUnknownCopyIsFalse", func(t *testing.T) {
		_, copyRepo, _, _, svc := newBorrowingService()

		copyRepo.On("IsAvailable", ctx, int32(9999)).Return(false, nil)

		available, err := svc.IsAvailable(ctx, 9999)
		assert.NoError(t, err)
		assert.False(t, available)
	})
}
