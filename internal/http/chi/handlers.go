package chi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	jsoniter "github.com/json-iterator/go"
	"github.com/marcelsud/library-catalog/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handlers builds the catalog API. metricsHandler is mounted on /metrics
// when not nil.
func Handlers(ctx context.Context, uc catalog.UseCase, metricsHandler http.Handler, logOptions httplog.Options) *chi.Mux {
	logger := httplog.NewLogger("library-catalog", logOptions)
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))

	r.Method(http.MethodGet, "/v1/books", getBooks(uc))
	r.Method(http.MethodPost, "/v1/books", postBooks(uc))
	r.Method(http.MethodGet, "/v1/books/{isbn}", getBook(uc))
	r.Method(http.MethodPost, "/v1/books/{isbn}/checkout", postCheckOut(uc))
	r.Method(http.MethodPost, "/v1/books/{isbn}/checkin", postCheckIn(uc))

	r.Method(http.MethodGet, "/v1/patrons", getPatrons(uc))
	r.Method(http.MethodPost, "/v1/patrons", postPatrons(uc))
	r.Method(http.MethodGet, "/v1/patrons/{card}", getPatron(uc))
	r.Method(http.MethodPut, "/v1/patrons/{card}/fees", putFees(uc))
	r.Method(http.MethodGet, "/v1/patrons-with-fees", getPatronsWithFees(uc))

	r.Method(http.MethodGet, "/v1/transactions", getTransactions(uc))

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps the catalog error kinds to status codes
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, catalog.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}
