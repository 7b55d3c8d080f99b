package domain

import "time"

type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "AVAILABLE"
	CopyStatusBorrowed  CopyStatus = "BORROWED"
)

// Copy is one lendable physical unit of a catalog title. Its status is a
// cached projection of the loan ledger: BORROWED iff an open loan record
// references the copy. Only the borrowing engine mutates it, and always in
// the same transaction as the ledger write.
type Copy struct {
	ID       int32      `json:"copy_id"`
	ISBN     string     `json:"isbn"`
	Status   CopyStatus `json:"status"`
	StoredAt time.Time  `json:"stored_at"`
	Book     *Book      `json:"book,omitempty"` // Populated on catalog reads
}

// CopyAudit is one row of the nightly status/ledger coherence check: a copy
// together with the number of open loans referencing it.
type CopyAudit struct {
	CopyID    int32      `json:"copy_id"`
	Status    CopyStatus `json:"status"`
	OpenLoans int32      `json:"open_loans"`
}
