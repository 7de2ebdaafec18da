package domain

// Account is a mutable entity owning a balance. The balance changes only
// through Deposit and Withdraw; both are all-or-nothing, so a failed
// operation leaves the balance exactly as it was.
type Account struct {
	ID      string
	balance Money
}

func NewAccount(id string, initialBalance Money) *Account {
	return &Account{
		ID:      id,
		balance: initialBalance,
	}
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	return a.balance
}

// Deposit adds money to the balance. Validation order is fixed: currency
// first, then sign. Zero deposits are rejected, not treated as no-ops.
func (a *Account) Deposit(money Money) error {
	if a.balance.Currency != money.Currency {
		return NewCurrencyMismatchError(a.balance.Currency, money.Currency)
	}
	if money.Amount <= 0 {
		return NewNonPositiveAmountError("deposit", money.Amount)
	}

	newBalance, err := a.balance.Add(money)
	if err != nil {
		return err
	}
	a.balance = newBalance
	return nil
}

// Withdraw removes money from the balance. Validation order is fixed:
// currency first, then sign, then sufficiency.
func (a *Account) Withdraw(money Money) error {
	if a.balance.Currency != money.Currency {
		return NewCurrencyMismatchError(a.balance.Currency, money.Currency)
	}
	if money.Amount <= 0 {
		return NewNonPositiveAmountError("withdraw", money.Amount)
	}
	if a.balance.Amount < money.Amount {
		return NewInsufficientFundsError(a.balance.Amount, money.Amount)
	}

	newBalance, err := a.balance.Subtract(money)
	if err != nil {
		return err
	}
	a.balance = newBalance
	return nil
}
