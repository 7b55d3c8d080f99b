package domain

import "time"

// LoanRecord is one borrow transaction. ReturnedAt is nil while the loan is
// open and set exactly once at return time; records are never deleted.
type LoanRecord struct {
	ID         int32      `json:"record_id"`
	UserID     int32      `json:"user_id"`
	CopyID     int32      `json:"copy_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`

	// Read-side enrichment, populated on history/active queries and on the
	// records returned by borrow/return.
	ISBN     string `json:"isbn,omitempty"`
	BookName string `json:"book_name,omitempty"`
}

// Open reports whether the loan has not been returned yet.
func (r *LoanRecord) Open() bool {
	return r.ReturnedAt == nil
}
