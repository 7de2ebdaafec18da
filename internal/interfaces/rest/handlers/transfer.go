package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/ledgerline/transfer-service/internal/application/services"
	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/interfaces/rest"
)

var validate = validator.New()

// TransferRequest is the transfer endpoint's body. Amount rides in as a
// json.Number so fractional values can be rejected instead of silently
// truncated.
type TransferRequest struct {
	FromAccountID string      `json:"fromAccountId" validate:"required"`
	ToAccountID   string      `json:"toAccountId" validate:"required"`
	Amount        json.Number `json:"amount" validate:"required"`
	Currency      string      `json:"currency" validate:"required,len=3"`
}

func (h *Handlers) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		rest.WriteValidationError(w, []rest.FieldViolation{
			{Field: "body", Message: "request body must be valid JSON"},
		})
		return
	}

	if violations := validateTransferRequest(req); len(violations) > 0 {
		rest.WriteValidationError(w, violations)
		return
	}

	amount, err := req.Amount.Int64()
	if err != nil {
		rest.WriteError(w, domain.NewInvalidAmountError("amount must be an integer"), h.logger)
		return
	}

	cmd := services.TransferCommand{
		SenderAccountID:   req.FromAccountID,
		ReceiverAccountID: req.ToAccountID,
		Amount:            amount,
		Currency:          req.Currency,
	}

	if err := h.transferService.Execute(r.Context(), cmd); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Transfer completed successfully",
	})
}

func validateTransferRequest(req TransferRequest) []rest.FieldViolation {
	var violations []rest.FieldViolation

	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				violations = append(violations, rest.FieldViolation{
					Field:   jsonFieldName(fe.Field()),
					Message: fmt.Sprintf("failed validation rule %q", fe.Tag()),
				})
			}
		}
	}

	if req.Amount != "" {
		if amount, err := req.Amount.Int64(); err == nil && amount <= 0 {
			violations = append(violations, rest.FieldViolation{
				Field:   "amount",
				Message: "amount must be a positive integer",
			})
		}
	}

	return violations
}

func jsonFieldName(structField string) string {
	switch structField {
	case "FromAccountID":
		return "fromAccountId"
	case "ToAccountID":
		return "toAccountId"
	case "Amount":
		return "amount"
	case "Currency":
		return "currency"
	default:
		return structField
	}
}
