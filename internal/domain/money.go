// Package domain encodes the account entity, the money value object and the
// business rules that govern transfers between accounts.
package domain

// Money is an immutable quantity of a single currency, held in minor units
// (cents). The int64 amount makes fractional minor units unrepresentable;
// callers that accept amounts from the outside world are responsible for
// rejecting fractional input before constructing a Money.
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add returns a new Money holding the sum. Both operands must share a
// currency; the operands are never mutated.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, NewCurrencyMismatchError(m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract returns a new Money holding the difference. The result may be
// negative; enforcing non-negative balances is the caller's job.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, NewCurrencyMismatchError(m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Equals reports structural equality: both amount and currency must match.
func (m Money) Equals(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}
