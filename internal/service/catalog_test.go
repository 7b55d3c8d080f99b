package service_test

import (
	"context"
	"testing"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_AddBook(t *testing.T) {
	ctx := context.Background()
	book := &domain.Book{ISBN: "9780134190440", Name: "The Go Programming Language", Author: "Donovan & Kernighan"}

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo, new(MockCopyRepo))

		bookRepo.On("GetByISBN", ctx, book.ISBN).Return(nil, domain.ErrBookNotFound)
		bookRepo.On("Create", ctx, book).Return(nil)

		assert.NoError(t, svc.AddBook(ctx, book))
	})

	t.Run("Duplicate", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo, new(MockCopyRepo))

		bookRepo.On("GetByISBN", ctx, book.ISBN).Return(book, nil)

		err := svc.AddBook(ctx, book)
		assert.ErrorIs(t, err, domain.ErrDuplicateBook)
		bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_AddCopy(t *testing.T) {
	ctx := context.Background()
	book := &domain.Book{ISBN: "9780134190440", Name: "The Go Programming Language"}

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		copyRepo := new(MockCopyRepo)
		svc := service.NewCatalogService(bookRepo, copyRepo)

		bookRepo.On("GetByISBN", ctx, book.ISBN).Return(book, nil)
		copyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Copy")).Return(nil)

		copy, err := svc.AddCopy(ctx, book.ISBN)
		assert.NoError(t, err)
		assert.Equal(t, domain.CopyStatusAvailable, copy.Status)
		assert.Equal(t, book, copy.Book)
	})

	t.Run("UnknownISBN", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		copyRepo := new(MockCopyRepo)
		svc := service.NewCatalogService(bookRepo, copyRepo)

		bookRepo.On("GetByISBN", ctx, "0000000000000").Return(nil, domain.ErrBookNotFound)

		copy, err := svc.AddCopy(ctx, "0000000000000")
		assert.ErrorIs(t, err, domain.ErrBookNotFound)
		assert.Nil(t, copy)
		copyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
