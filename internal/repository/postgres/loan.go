package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

// Borrow runs the whole check-then-act as one transaction. The FOR UPDATE on
// the copy row is the critical section: every borrow or return of the same
// copy queues behind it, so the availability check, the open-loan check and
// both writes are observed atomically. Concurrent borrows of one copy cannot
// both pass the checks.
func (r *loanRepository) Borrow(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status domain.CopyStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM copies WHERE copy_id = $1 FOR UPDATE`, copyID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCopyNotFound
	}
	if err != nil {
		return nil, err
	}
	if status != domain.CopyStatusAvailable {
		return nil, &domain.CopyNotAvailableError{CopyID: copyID, Status: status}
	}

	// The status check above should already exclude an open loan; this
	// guards the one-open-loan-per-copy invariant against a drifted
	// projection.
	var openUserID int32
	err = tx.QueryRowContext(ctx, `SELECT user_id FROM loan_records WHERE copy_id = $1 AND returned_at IS NULL`, copyID).Scan(&openUserID)
	switch {
	case err == nil:
		if openUserID == userID {
			return nil, domain.ErrAlreadyBorrowedBySelf
		}
		return nil, domain.ErrAlreadyBorrowedByOther
	case errors.Is(err, sql.ErrNoRows):
		// No open loan, proceed.
	default:
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE copies SET status = $1 WHERE copy_id = $2`, domain.CopyStatusBorrowed, copyID); err != nil {
		return nil, err
	}

	rec := &domain.LoanRecord{UserID: userID, CopyID: copyID, BorrowedAt: time.Now()}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO loan_records (user_id, copy_id, borrowed_at) VALUES ($1, $2, $3) RETURNING record_id`,
		rec.UserID, rec.CopyID, rec.BorrowedAt).Scan(&rec.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Return closes the open loan and restores the copy to AVAILABLE in one
// transaction. An unknown copy id falls out of the copy lock query as
// ErrNoActiveLoan: with no copy there can be no open loan on it.
func (r *loanRepository) Return(ctx context.Context, userID, copyID int32) (*domain.LoanRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status domain.CopyStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM copies WHERE copy_id = $1 FOR UPDATE`, copyID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActiveLoan
	}
	if err != nil {
		return nil, err
	}

	rec := &domain.LoanRecord{}
	err = tx.QueryRowContext(ctx,
		`SELECT record_id, user_id, copy_id, borrowed_at FROM loan_records WHERE copy_id = $1 AND returned_at IS NULL`,
		copyID).Scan(&rec.ID, &rec.UserID, &rec.CopyID, &rec.BorrowedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActiveLoan
	}
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, domain.ErrNotBorrower
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `UPDATE loan_records SET returned_at = $1 WHERE record_id = $2`, now, rec.ID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE copies SET status = $1 WHERE copy_id = $2`, domain.CopyStatusAvailable, copyID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	rec.ReturnedAt = &now
	return rec, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	query := `SELECT l.record_id, l.user_id, l.copy_id, l.borrowed_at, l.returned_at, c.isbn, b.name
	          FROM loan_records l
	          JOIN copies c ON c.copy_id = l.copy_id
	          JOIN books b ON b.isbn = c.isbn
	          WHERE l.user_id = $1 ORDER BY l.borrowed_at DESC`
	return r.list(ctx, query, userID)
}

func (r *loanRepository) ListActiveByUser(ctx context.Context, userID int32) ([]domain.LoanRecord, error) {
	query := `SELECT l.record_id, l.user_id, l.copy_id, l.borrowed_at, l.returned_at, c.isbn, b.name
	          FROM loan_records l
	          JOIN copies c ON c.copy_id = l.copy_id
	          JOIN books b ON b.isbn = c.isbn
	          WHERE l.user_id = $1 AND l.returned_at IS NULL ORDER BY l.borrowed_at DESC`
	return r.list(ctx, query, userID)
}

func (r *loanRepository) list(ctx context.Context, query string, userID int32) ([]domain.LoanRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.LoanRecord
	for rows.Next() {
		var rec domain.LoanRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CopyID, &rec.BorrowedAt, &rec.ReturnedAt, &rec.ISBN, &rec.BookName); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
