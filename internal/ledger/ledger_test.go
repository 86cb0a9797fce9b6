package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestDirectory() *Directory {
	return NewDirectory(WithClock(func() time.Time { return fixedTime }))
}

func mustCreate(d *Directory, name string, number int) *Account {
	c, err := d.Create(name, number)
	if err != nil {
		panic(err)
	}
	return c.Account()
}
