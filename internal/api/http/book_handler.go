package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	catalogSvc   service.CatalogService
	borrowingSvc service.BorrowingService
}

func NewBookHandler(catalogSvc service.CatalogService, borrowingSvc service.BorrowingService) *BookHandler {
	return &BookHandler{catalogSvc: catalogSvc, borrowingSvc: borrowingSvc}
}

// List returns the whole catalog, or a single-book lookup when a name or
// author query parameter is present.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		book, err := h.catalogSvc.FindBookByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, "ok", []domain.Book{*book})
		return
	}
	if author := r.URL.Query().Get("author"); author != "" {
		book, err := h.catalogSvc.FindBookByAuthor(r.Context(), author)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeSuccess(w, "ok", []domain.Book{*book})
		return
	}

	books, err := h.catalogSvc.ListBooks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]
	book, err := h.catalogSvc.GetBook(r.Context(), isbn)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", book)
}

func (h *BookHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	copies, err := h.borrowingSvc.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", copies)
}

// CheckAvailability probes one copy. An unknown copy id reports available:
// false rather than 404.
func (h *BookHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	copyID, err := strconv.ParseInt(mux.Vars(r)["copyId"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid copy id", "BAD_REQUEST")
		return
	}

	available, err := h.borrowingSvc.IsAvailable(r.Context(), int32(copyID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "ok", map[string]any{"copy_id": int32(copyID), "available": available})
}

type addBookRequest struct {
	ISBN         string `json:"isbn"`
	Name         string `json:"name"`
	Author       string `json:"author"`
	Introduction string `json:"introduction"`
	ImageURL     string `json:"image_url"`
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	book := &domain.Book{
		ISBN:         req.ISBN,
		Name:         req.Name,
		Author:       req.Author,
		Introduction: req.Introduction,
		ImageURL:     req.ImageURL,
	}
	if err := h.catalogSvc.AddBook(r.Context(), book); err != nil {
		writeServiceError(w, err)
		return
	}
	writeCreated(w, "book added", book)
}

func (h *BookHandler) AddCopy(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]
	copy, err := h.catalogSvc.AddCopy(r.Context(), isbn)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCreated(w, "copy stocked in", copy)
}
