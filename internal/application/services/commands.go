package services

// TransferCommand carries one transfer request through the application
// layer. Shape validation (non-empty ids, positive amount, currency length)
// happens at the transport boundary; business rules are checked here and in
// the domain.
type TransferCommand struct {
	SenderAccountID   string
	ReceiverAccountID string
	Amount            int64
	Currency          string
}
