package postgres

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (isbn, name, author, introduction, image_url) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, b.ISBN, b.Name, b.Author, b.Introduction, b.ImageURL)
	return err
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return r.getOne(ctx, `SELECT isbn, name, author, COALESCE(introduction, ''), COALESCE(image_url, '') FROM books WHERE isbn = $1`, isbn)
}

func (r *bookRepository) GetByName(ctx context.Context, name string) (*domain.Book, error) {
	return r.getOne(ctx, `SELECT isbn, name, author, COALESCE(introduction, ''), COALESCE(image_url, '') FROM books WHERE name = $1`, name)
}

func (r *bookRepository) GetByAuthor(ctx context.Context, author string) (*domain.Book, error) {
	return r.getOne(ctx, `SELECT isbn, name, author, COALESCE(introduction, ''), COALESCE(image_url, '') FROM books WHERE author = $1`, author)
}

func (r *bookRepository) getOne(ctx context.Context, query string, arg any) (*domain.Book, error) {
	b := &domain.Book{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&b.ISBN, &b.Name, &b.Author, &b.Introduction, &b.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT isbn, name, author, COALESCE(introduction, ''), COALESCE(image_url, '') FROM books ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ISBN, &b.Name, &b.Author, &b.Introduction, &b.ImageURL); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
