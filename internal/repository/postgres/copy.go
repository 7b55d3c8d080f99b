package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type copyRepository struct {
	db *sql.DB
}

func NewCopyRepository(db *sql.DB) repository.CopyRepository {
	return &copyRepository{db: db}
}

func (r *copyRepository) Create(ctx context.Context, c *domain.Copy) error {
	query := `INSERT INTO copies (isbn, status, stored_at) VALUES ($1, $2, $3) RETURNING copy_id`
	if c.Status == "" {
		c.Status = domain.CopyStatusAvailable
	}
	c.StoredAt = time.Now()
	return r.db.QueryRowContext(ctx, query, c.ISBN, c.Status, c.StoredAt).Scan(&c.ID)
}

func (r *copyRepository) GetByID(ctx context.Context, id int32) (*domain.Copy, error) {
	c := &domain.Copy{}
	query := `SELECT copy_id, isbn, status, stored_at FROM copies WHERE copy_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.ISBN, &c.Status, &c.StoredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCopyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IsAvailable treats an unknown copy id as "not available" rather than an
// error, matching the catalog's lenient availability probe.
func (r *copyRepository) IsAvailable(ctx context.Context, id int32) (bool, error) {
	var available bool
	query := `SELECT EXISTS(SELECT 1 FROM copies WHERE copy_id = $1 AND status = $2)`
	err := r.db.QueryRowContext(ctx, query, id, domain.CopyStatusAvailable).Scan(&available)
	return available, err
}

func (r *copyRepository) ListAvailable(ctx context.Context) ([]domain.Copy, error) {
	query := `SELECT c.copy_id, c.isbn, c.status, c.stored_at, b.name, b.author, COALESCE(b.introduction, ''), COALESCE(b.image_url, '')
	          FROM copies c JOIN books b ON b.isbn = c.isbn
	          WHERE c.status = $1 ORDER BY c.copy_id`
	rows, err := r.db.QueryContext(ctx, query, domain.CopyStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var copies []domain.Copy
	for rows.Next() {
		var c domain.Copy
		b := &domain.Book{}
		if err := rows.Scan(&c.ID, &c.ISBN, &c.Status, &c.StoredAt, &b.Name, &b.Author, &b.Introduction, &b.ImageURL); err != nil {
			return nil, err
		}
		b.ISBN = c.ISBN
		c.Book = b
		copies = append(copies, c)
	}
	return copies, rows.Err()
}

func (r *copyRepository) ListByISBN(ctx context.Context, isbn string) ([]domain.Copy, error) {
	query := `SELECT copy_id, isbn, status, stored_at FROM copies WHERE isbn = $1 ORDER BY copy_id`
	rows, err := r.db.QueryContext(ctx, query, isbn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var copies []domain.Copy
	for rows.Next() {
		var c domain.Copy
		if err := rows.Scan(&c.ID, &c.ISBN, &c.Status, &c.StoredAt); err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}
	return copies, rows.Err()
}

// ListStatusMismatches recomputes the status projection from the ledger: a
// copy is coherent when it is BORROWED with exactly one open loan or
// AVAILABLE with none. Anything else is drift the engine did not cause.
func (r *copyRepository) ListStatusMismatches(ctx context.Context) ([]domain.CopyAudit, error) {
	query := `SELECT c.copy_id, c.status, count(l.record_id) AS open_loans
	          FROM copies c
	          LEFT JOIN loan_records l ON l.copy_id = c.copy_id AND l.returned_at IS NULL
	          GROUP BY c.copy_id, c.status
	          HAVING (c.status = $1 AND count(l.record_id) <> 1)
	              OR (c.status = $2 AND count(l.record_id) <> 0)`
	rows, err := r.db.QueryContext(ctx, query, domain.CopyStatusBorrowed, domain.CopyStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []domain.CopyAudit
	for rows.Next() {
		var a domain.CopyAudit
		if err := rows.Scan(&a.CopyID, &a.Status, &a.OpenLoans); err != nil {
			return nil, err
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}
