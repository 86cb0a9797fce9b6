package ledger

import (
	"fmt"
	"io"
)

// Customer owns exactly one Account.
type Customer struct {
	name    string
	account *Account
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Account returns the customer's account for mutation or reporting.
func (c *Customer) Account() *Account {
	return c.account
}

// WriteDetails renders the customer name followed by the account details.
func (c *Customer) WriteDetails(w io.Writer, currency string) error {
	if _, err := fmt.Fprintf(w, "\nCustomer Name: %s\n", c.name); err != nil {
		return err
	}
	return c.account.WriteDetails(w, currency)
}
