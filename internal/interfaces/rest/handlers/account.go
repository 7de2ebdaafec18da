package handlers

import (
	"net/http"

	"github.com/ledgerline/transfer-service/internal/interfaces/rest"
)

// AccountResponse is the read model for a single account.
type AccountResponse struct {
	ID       string `json:"id"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	account, err := h.queryService.GetAccount(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	balance := account.Balance()
	rest.WriteJSON(w, http.StatusOK, AccountResponse{
		ID:       account.ID,
		Balance:  balance.Amount,
		Currency: balance.Currency,
	})
}
