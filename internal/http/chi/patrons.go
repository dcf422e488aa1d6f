package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-catalog/catalog"
)

type patronRequest struct {
	Name       string `json:"name"`
	CardNumber string `json:"card_number"`
	OwedFees   int    `json:"owed_fees"`
}

type patronResponse struct {
	Name       string `json:"name"`
	CardNumber string `json:"card_number"`
	OwedFees   int    `json:"owed_fees"`
}

type feesRequest struct {
	OwedFees *int `json:"owed_fees"`
}

type transactionResponse struct {
	ID         string `json:"id"`
	ISBN       string `json:"isbn"`
	CardNumber string `json:"card_number"`
	Activity   string `json:"activity"`
	Date       string `json:"date"`
}

func toPatronResponse(p catalog.Patron) patronResponse {
	return patronResponse{Name: p.Name, CardNumber: p.CardNumber, OwedFees: p.OwedFees}
}

func getPatrons(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := uc.ListPatrons(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		result := make([]patronResponse, 0, len(all))
		for _, p := range all {
			result = append(result, toPatronResponse(p))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getPatron(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := uc.GetPatron(r.Context(), chi.URLParam(r, "card"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPatronResponse(p))
	})
}

func postPatrons(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pr patronRequest
		if err := json.NewDecoder(r.Body).Decode(&pr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, err := uc.AddPatron(r.Context(), catalog.Patron{
			Name:       pr.Name,
			CardNumber: pr.CardNumber,
			OwedFees:   pr.OwedFees,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPatronResponse(p))
	})
}

func putFees(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var fr feesRequest
		if err := json.NewDecoder(r.Body).Decode(&fr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if fr.OwedFees == nil {
			http.Error(w, "owed_fees is required", http.StatusBadRequest)
			return
		}
		if err := uc.UpdateFees(r.Context(), chi.URLParam(r, "card"), *fr.OwedFees); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func getPatronsWithFees(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := uc.PatronsWithFees(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, http.StatusOK, names)
	})
}

func getTransactions(uc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := uc.ListTransactions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		result := make([]transactionResponse, 0, len(all))
		for _, t := range all {
			result = append(result, transactionResponse{
				ID:         t.ID,
				ISBN:       t.ISBN,
				CardNumber: t.CardNumber,
				Activity:   t.Activity.String(),
				Date:       t.Date,
			})
		}
		writeJSON(w, http.StatusOK, result)
	})
}
