package service

import (
	"context"

	"library-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, phone, password, name string) (*domain.User, error)
	Login(ctx context.Context, phone, password string) (*domain.User, string, error) // user, access token
}

type CatalogService interface {
	AddBook(ctx context.Context, book *domain.Book) error
	AddCopy(ctx context.Context, isbn string) (*domain.Copy, error)
	GetBook(ctx context.Context, isbn string) (*domain.Book, error)
	FindBookByName(ctx context.Context, name string) (*domain.Book, error)
	FindBookByAuthor(ctx context.Context, author string) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

// BorrowingService is the borrowing engine: it owns the Available/Borrowed
// state machine of every copy and keeps the inventory status and the loan
// ledger consistent under concurrent requests.
type BorrowingService interface {
	Borrow(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error)
	Return(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error)
	GetHistory(ctx context.Context, userID int32) ([]domain.LoanRecord, error)
	GetActiveLoans(ctx context.Context, userID int32) ([]domain.LoanRecord, error)
	IsAvailable(ctx context.Context, copyID int32) (bool, error)
	ListAvailable(ctx context.Context) ([]domain.Copy, error)
}
