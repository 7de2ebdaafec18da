// Package handlers wires the HTTP endpoints to the application services.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ledgerline/transfer-service/internal/application/services"
)

type Handlers struct {
	transferService *services.TransferService
	queryService    *services.QueryService
	logger          *slog.Logger
}

func NewHandlers(
	transferService *services.TransferService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		transferService: transferService,
		queryService:    queryService,
		logger:          logger,
	}
}

// Register attaches all routes to the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts/transfer", h.Transfer)
	mux.HandleFunc("GET /accounts/{id}", h.GetAccount)
}
