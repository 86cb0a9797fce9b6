package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a ledger event.
type Kind string

const (
	KindDeposit          Kind = "deposit"
	KindWithdraw         Kind = "withdraw"
	KindTransferSent     Kind = "transfer-sent"
	KindTransferReceived Kind = "transfer-received"
)

// Label returns the human-readable name used in history listings.
func (k Kind) Label() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdraw:
		return "Withdraw"
	case KindTransferSent:
		return "Transfer Sent"
	case KindTransferReceived:
		return "Transfer Received"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdraw, KindTransferSent, KindTransferReceived:
		return true
	}
	return false
}

// Credit reports whether the kind increases the balance.
func (k Kind) Credit() bool {
	return k == KindDeposit || k == KindTransferReceived
}

// Transaction is one entry in an account's history. Values are never modified
// after they are appended.
type Transaction struct {
	Ref    string // "<account>-<seq>", see internal/id
	Time   time.Time
	Kind   Kind
	Amount decimal.Decimal // always positive; direction comes from Kind
	Note   string
}

// Signed returns the balance effect of the transaction.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind.Credit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Net sums the signed effect of txns in order.
func Net(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Signed())
	}
	return total
}
