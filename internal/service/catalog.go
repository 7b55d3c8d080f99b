package service

import (
	"context"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type catalogService struct {
	bookRepo repository.BookRepository
	copyRepo repository.CopyRepository
}

func NewCatalogService(bookRepo repository.BookRepository, copyRepo repository.CopyRepository) CatalogService {
	return &catalogService{
		bookRepo: bookRepo,
		copyRepo: copyRepo,
	}
}

func (s *catalogService) AddBook(ctx context.Context, book *domain.Book) error {
	if book.ISBN == "" || book.Name == "" {
		return errors.New("isbn and name are required")
	}
	_, err := s.bookRepo.GetByISBN(ctx, book.ISBN)
	if err == nil {
		return domain.ErrDuplicateBook
	}
	if !errors.Is(err, domain.ErrBookNotFound) {
		return err
	}
	return s.bookRepo.Create(ctx, book)
}

// AddCopy stocks in one lendable copy of a catalog title. New copies always
// start out available.
func (s *catalogService) AddCopy(ctx context.Context, isbn string) (*domain.Copy, error) {
	book, err := s.bookRepo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	copy := &domain.Copy{
		ISBN:   book.ISBN,
		Status: domain.CopyStatusAvailable,
	}
	if err := s.copyRepo.Create(ctx, copy); err != nil {
		return nil, err
	}
	copy.Book = book
	return copy, nil
}

func (s *catalogService) GetBook(ctx context.Context, isbn string) (*domain.Book, error) {
	return s.bookRepo.GetByISBN(ctx, isbn)
}

func (s *catalogService) FindBookByName(ctx context.Context, name string) (*domain.Book, error) {
	return s.bookRepo.GetByName(ctx, name)
}

func (s *catalogService) FindBookByAuthor(ctx context.Context, author string) (*domain.Book, error) {
	return s.bookRepo.GetByAuthor(ctx, author)
}

func (s *catalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.bookRepo.List(ctx)
}
