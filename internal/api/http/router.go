package http

import (
	"net/http"

	"library-backend/internal/security"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all routes. Catalog reads are public; borrowing and
// stock-in require a valid session token.
func NewRouter(
	authSvc service.AuthService,
	catalogSvc service.CatalogService,
	borrowingSvc service.BorrowingService,
	tokens security.TokenManager,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	bookHandler := NewBookHandler(catalogSvc, borrowingSvc)
	borrowingHandler := NewBorrowingHandler(borrowingSvc)

	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware, MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/books", bookHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/books/available", bookHandler.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/books/availability/{copyId}", bookHandler.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/books/{isbn}", bookHandler.Get).Methods(http.MethodGet)

	// Authenticated
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))
	protected.HandleFunc("/books", bookHandler.Add).Methods(http.MethodPost)
	protected.HandleFunc("/books/{isbn}/copies", bookHandler.AddCopy).Methods(http.MethodPost)
	protected.HandleFunc("/borrowing/borrow", borrowingHandler.Borrow).Methods(http.MethodPost)
	protected.HandleFunc("/borrowing/return", borrowingHandler.Return).Methods(http.MethodPost)
	protected.HandleFunc("/borrowing/history", borrowingHandler.History).Methods(http.MethodGet)
	protected.HandleFunc("/borrowing/active", borrowingHandler.Active).Methods(http.MethodGet)

	return r
}
