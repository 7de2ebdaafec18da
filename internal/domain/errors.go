package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Business rule error codes
const (
	ErrCodeInvalidAmount     = "INVALID_AMOUNT"
	ErrCodeCurrencyMismatch  = "CURRENCY_MISMATCH"
	ErrCodeNonPositiveAmount = "NON_POSITIVE_AMOUNT"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeSelfTransfer      = "SELF_TRANSFER"
	ErrCodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
)

func NewInvalidAmountError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: message,
	}
}

func NewCurrencyMismatchError(want, got string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCurrencyMismatch,
		Message: fmt.Sprintf("cannot operate on different currencies: %s and %s", want, got),
	}
}

func NewNonPositiveAmountError(operation string, amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNonPositiveAmount,
		Message: fmt.Sprintf("cannot %s non positive amount %d", operation, amount),
	}
}

func NewInsufficientFundsError(balance, requested int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientFunds,
		Message: fmt.Sprintf("insufficient funds: balance %d, requested %d", balance, requested),
	}
}

func NewSelfTransferError(accountID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeSelfTransfer,
		Message: fmt.Sprintf("cannot transfer money from account %s to itself", accountID),
	}
}

func NewAccountNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account with ID %s not found", id),
	}
}

// NewMissingAccountError reports a failed lookup for one side of a transfer,
// keeping the ACCOUNT_NOT_FOUND code while naming the side that was missing.
func NewMissingAccountError(side, id string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("could not find %s account %s", side, id),
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
