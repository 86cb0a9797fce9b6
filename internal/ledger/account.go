package ledger

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// Account holds a balance and the ordered history that produced it.
// Accounts are created by a Directory and never removed.
type Account struct {
	number  int
	balance decimal.Decimal
	history []model.Transaction
	now     func() time.Time
}

func newAccount(number int, now func() time.Time) *Account {
	return &Account{number: number, balance: decimal.Zero, now: now}
}

// Number returns the account number.
func (a *Account) Number() int {
	return a.number
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// History returns a copy of the transaction log in chronological order.
func (a *Account) History() []model.Transaction {
	out := make([]model.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(model.KindDeposit, amount, "Money Deposited")
	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.checkDebit(amount); err != nil {
		return a.balance, err
	}
	a.balance = a.balance.Sub(amount)
	a.record(model.KindWithdraw, amount, "Money Withdrawn")
	return a.balance, nil
}

// Transfer moves amount from a to receiver. Only the sender's balance is
// checked. Both sides change together or neither does.
func (a *Account) Transfer(receiver *Account, amount decimal.Decimal) error {
	if receiver == nil {
		return ErrAccountNotFound
	}
	if err := a.checkDebit(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	receiver.balance = receiver.balance.Add(amount)

	a.record(model.KindTransferSent, amount, "To Account "+strconv.Itoa(receiver.number))
	receiver.record(model.KindTransferReceived, amount, "From Account "+strconv.Itoa(a.number))
	return nil
}

func (a *Account) checkDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	return nil
}

func (a *Account) record(kind model.Kind, amount decimal.Decimal, note string) {
	a.history = append(a.history, model.Transaction{
		Ref:    id.FormatRef(a.number, len(a.history)+1),
		Time:   a.now(),
		Kind:   kind,
		Amount: amount,
		Note:   note,
	})
}

// WriteHistory renders the transaction log, oldest first.
func (a *Account) WriteHistory(w io.Writer, currency string) error {
	if _, err := fmt.Fprintln(w, "\nTransaction History:"); err != nil {
		return err
	}
	if len(a.history) == 0 {
		_, err := fmt.Fprintln(w, "No transactions available.")
		return err
	}
	for _, t := range a.history {
		if _, err := fmt.Fprintf(w, "- %s: %s%s (%s)\n", t.Kind.Label(), currency, t.Amount.String(), t.Note); err != nil {
			return err
		}
	}
	return nil
}

// WriteDetails renders the account number, the balance to two decimals and
// the history.
func (a *Account) WriteDetails(w io.Writer, currency string) error {
	if _, err := fmt.Fprintf(w, "\nAccount Number: %d\n", a.number); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Current Balance: %s%s\n", currency, a.balance.StringFixed(2)); err != nil {
		return err
	}
	return a.WriteHistory(w, currency)
}
