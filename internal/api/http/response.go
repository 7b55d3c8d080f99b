package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/service"
)

// Envelope is the response shape every endpoint returns.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func writeCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, Envelope{Success: false, Message: message, ErrorCode: code})
}

// writeServiceError maps the engine's failure taxonomy onto HTTP statuses
// and stable machine codes. Anything not in the taxonomy is an internal
// storage/transport failure and is not echoed to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var unavailable *domain.CopyNotAvailableError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, domain.ErrCopyNotFound):
		writeError(w, http.StatusNotFound, err.Error(), "COPY_NOT_FOUND")
	case errors.Is(err, domain.ErrBookNotFound):
		writeError(w, http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, domain.ErrNoActiveLoan):
		writeError(w, http.StatusNotFound, err.Error(), "NO_ACTIVE_LOAN")
	case errors.As(err, &unavailable):
		writeError(w, http.StatusConflict, err.Error(), "COPY_NOT_AVAILABLE")
	case errors.Is(err, domain.ErrAlreadyBorrowedBySelf):
		writeError(w, http.StatusConflict, err.Error(), "ALREADY_BORROWED_SELF")
	case errors.Is(err, domain.ErrAlreadyBorrowedByOther):
		writeError(w, http.StatusConflict, err.Error(), "ALREADY_BORROWED_OTHER")
	case errors.Is(err, domain.ErrNotBorrower):
		writeError(w, http.StatusConflict, err.Error(), "NOT_BORROWER")
	case errors.Is(err, domain.ErrDuplicateBook):
		writeError(w, http.StatusConflict, err.Error(), "DUPLICATE_BOOK")
	case errors.Is(err, domain.ErrPhoneRegistered):
		writeError(w, http.StatusConflict, err.Error(), "PHONE_REGISTERED")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrPasswordTooWeak),
		errors.Is(err, service.ErrInvalidName):
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		logger.Error("Internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL")
	}
}
