package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Ref         string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Ref, e.Description)
}

// Validate checks an account's balance against its own history.
func Validate(a *Account) []ValidationError {
	return ValidateHistory(a.number, a.balance, a.history)
}

// ValidateHistory enforces 4 invariants on an account's history.
func ValidateHistory(number int, balance decimal.Decimal, txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	acct := fmt.Sprintf("account %d", number)

	// Invariant 1: balance equals the signed sum of history.
	if net := model.Net(txns); !net.Equal(balance) {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Ref:         acct,
			Description: fmt.Sprintf("balance (%s) != net of history (%s)", balance.StringFixed(2), net.StringFixed(2)),
		})
	}

	// Invariant 3: balance never negative.
	if balance.IsNegative() {
		errs = append(errs, ValidationError{
			Invariant:   3,
			Ref:         acct,
			Description: fmt.Sprintf("negative balance %s", balance.StringFixed(2)),
		})
	}

	for i, t := range txns {
		// Invariant 2: positive amounts and known kinds.
		if !t.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Ref:         t.Ref,
				Description: fmt.Sprintf("amount %s must be positive", t.Amount),
			})
		}
		if !t.Kind.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Ref:         t.Ref,
				Description: fmt.Sprintf("unknown kind %q", t.Kind),
			})
		}

		// Invariant 4: refs belong to this account and run 1..N in order.
		owner, seq, err := id.ParseRef(t.Ref)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Ref:         t.Ref,
				Description: fmt.Sprintf("invalid ref: %v", err),
			})
			continue
		}
		if owner != number {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Ref:         t.Ref,
				Description: fmt.Sprintf("ref belongs to account %d", owner),
			})
		}
		if seq != i+1 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Ref:         t.Ref,
				Description: fmt.Sprintf("sequence %d at position %d", seq, i+1),
			})
		}
	}

	return errs
}
