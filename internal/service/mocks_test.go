package service_test

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) TouchLastLogin(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepo) GetByName(ctx context.Context, name string) (*domain.Book, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepo) GetByAuthor(ctx context.Context, author string) (*domain.Book, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

type MockCopyRepo struct {
	mock.Mock
}

func (m *MockCopyRepo) Create(ctx context.Context, copy *domain.Copy) error {
	args := m.Called(ctx, copy)
	return args.Error(0)
}

func (m *MockCopyRepo) GetByID(ctx context.Context, id int32) (*domain.Copy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Copy), args.Error(1)
}

func (m *MockCopyRepo) IsAvailable(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCopyRepo) ListAvailable(ctx context.Context) ([]domain.Copy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Copy), args.Error(1)
}

func (m *MockCopyRepo) ListByISBN(ctx context.Context, isbn string) ([]domain.Copy, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Copy), args.Error(1)
}

func (m *MockCopyRepo) ListStatusMismatches(ctx context.Context) ([]domain.CopyAudit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CopyAudit), args.Error(1)
}

type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Borrow(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	args := m.Called(ctx, userID, copyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanRecord), args.Error(1)
}

func (m *MockLoanRepo) Return(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	args := m.Called(ctx, userID, copyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanRecord), args.Error(1)
}

func (m *MockLoanRepo) ListByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRecord), args.Error(1)
}

func (m *MockLoanRepo) ListActiveByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRecord), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, phone string) (string, error) {
	args := m.Called(userID, phone)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
