package ledger

import "time"

// Directory is the ordered set of customers, indexed by account number.
type Directory struct {
	customers []*Customer
	byNumber  map[int]*Customer
	now       func() time.Time
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock sets the timestamp source for new transactions.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// NewDirectory creates an empty Directory.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		byNumber: make(map[int]*Customer),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Create registers a customer with a fresh zero-balance account.
func (d *Directory) Create(name string, number int) (*Customer, error) {
	if _, ok := d.byNumber[number]; ok {
		return nil, ErrDuplicateAccount
	}
	c := &Customer{name: name, account: newAccount(number, d.now)}
	d.customers = append(d.customers, c)
	d.byNumber[number] = c
	return c, nil
}

// Find returns the customer whose account has the given number.
func (d *Directory) Find(number int) (*Customer, error) {
	c, ok := d.byNumber[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return c, nil
}

// Customers returns all customers in creation order.
func (d *Directory) Customers() []*Customer {
	out := make([]*Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

// Len returns the number of customers.
func (d *Directory) Len() int {
	return len(d.customers)
}
