package http

import (
	"encoding/json"
	"net/http"

	"library-backend/internal/service"
)

type BorrowingHandler struct {
	borrowingSvc service.BorrowingService
}

func NewBorrowingHandler(borrowingSvc service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{borrowingSvc: borrowingSvc}
}

// copyRequest is the fixed schema of borrow and return calls; the user id
// comes from the authenticated context, never from the payload.
type copyRequest struct {
	CopyID int32 `json:"copy_id"`
}

func (h *BorrowingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity", "MISSING_TOKEN")
		return
	}

	var req copyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CopyID == 0 {
		writeError(w, http.StatusBadRequest, "copy_id is required", "BAD_REQUEST")
		return
	}

	rec, err := h.borrowingSvc.Borrow(r.Context(), userID, req.CopyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "borrowed", rec)
}

func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity", "MISSING_TOKEN")
		return
	}

	var req copyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CopyID == 0 {
		writeError(w, http.StatusBadRequest, "copy_id is required", "BAD_REQUEST")
		return
	}

	rec, err := h.borrowingSvc.Return(r.Context(), userID, req.CopyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "returned", rec)
}

func (h *BorrowingHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity", "MISSING_TOKEN")
		return
	}

	records, err := h.borrowingSvc.GetHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", records)
}

func (h *BorrowingHandler) Active(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity", "MISSING_TOKEN")
		return
	}

	records, err := h.borrowingSvc.GetActiveLoans(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", records)
}
