package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-catalog/catalog"
)

/*
 * Web representation of a book, the only place with json tags
 */
type bookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}

type bookResponse struct {
	ISBN       string `json:"isbn"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	Genre      string `json:"genre"`
	CheckedOut bool   `json:"checked_out"`
}

// loanRequest is the body of checkout and checkin. Date may be empty.
type loanRequest struct {
	CardNumber string `json:"card_number"`
	Date       string `json:"date"`
}

func toBookResponse(b catalog.Book) bookResponse {
	return bookResponse{
		ISBN:       b.ISBN,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		Genre:      b.Genre.String(),
		CheckedOut: b.CheckedOut,
	}
}

func getBooks(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := uc.ListBooks(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		result := make([]bookResponse, 0, len(all))
		for _, b := range all {
			result = append(result, toBookResponse(b))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getBook(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := uc.GetBook(r.Context(), chi.URLParam(r, "isbn"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookResponse(b))
	})
}

func postBooks(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		genre, err := catalog.LookupGenre(br.Genre)
		if err != nil {
			writeError(w, err)
			return
		}
		b, err := uc.AddBook(r.Context(), catalog.Book{
			ISBN:   br.ISBN,
			Title:  br.Title,
			Author: br.Author,
			Year:   br.Year,
			Genre:  genre,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toBookResponse(b))
	})
}

func postCheckOut(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr loanRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := uc.CheckOut(r.Context(), chi.URLParam(r, "isbn"), lr.CardNumber, lr.Date); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func postCheckIn(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr loanRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := uc.CheckIn(r.Context(), chi.URLParam(r, "isbn"), lr.CardNumber, lr.Date); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
