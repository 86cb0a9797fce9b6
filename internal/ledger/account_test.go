package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func TestDeposit(t *testing.T) {
	acct := mustCreate(newTestDirectory(), "Alice", 100)

	bal, err := acct.Deposit(dec("500"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("500")))
	assert.True(t, acct.Balance().Equal(dec("500")))

	hist := acct.History()
	require.Len(t, hist, 1)
	assert.Equal(t, model.KindDeposit, hist[0].Kind)
	assert.True(t, hist[0].Amount.Equal(dec("500")))
	assert.Equal(t, "Money Deposited", hist[0].Note)
	assert.Equal(t, "100-0001", hist[0].Ref)
	assert.Equal(t, fixedTime, hist[0].Time)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	acct := mustCreate(newTestDirectory(), "Alice", 100)
	_, err := acct.Deposit(dec("10"))
	require.NoError(t, err)

	for _, amt := range []string{"0", "-1", "-0.01"} {
		bal, err := acct.Deposit(dec(amt))
		require.ErrorIs(t, err, ErrInvalidAmount, "Deposit(%s)", amt)
		assert.True(t, bal.Equal(dec("10")))
	}
	assert.True(t, acct.Balance().Equal(dec("10")))
	assert.Len(t, acct.History(), 1)
}

func TestWithdraw(t *testing.T) {
	acct := mustCreate(newTestDirectory(), "Alice", 100)
	_, err := acct.Deposit(dec("100"))
	require.NoError(t, err)

	bal, err := acct.Withdraw(dec("40.50"))
	require.NoError(t, err)
	assert.Equal(t, "59.50", bal.StringFixed(2))

	hist := acct.History()
	require.Len(t, hist, 2)
	assert.Equal(t, model.KindWithdraw, hist[1].Kind)
	assert.Equal(t, "Money Withdrawn", hist[1].Note)
	assert.Equal(t, "100-0002", hist[1].Ref)

	// The whole balance may be withdrawn.
	bal, err = acct.Withdraw(dec("59.50"))
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}

func TestWithdraw_Rejected(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0", ErrInvalidAmount},
		{"-5", ErrInvalidAmount},
		{"50.01", ErrInsufficientBalance},
		{"1000", ErrInsufficientBalance},
	}
	for _, tt := range tests {
		acct := mustCreate(newTestDirectory(), "Alice", 100)
		_, err := acct.Deposit(dec("50"))
		require.NoError(t, err)

		_, err = acct.Withdraw(dec(tt.amount))
		require.ErrorIs(t, err, tt.want, "Withdraw(%s)", tt.amount)
		assert.True(t, acct.Balance().Equal(dec("50")))
		assert.Len(t, acct.History(), 1)
	}
}

func TestTransfer(t *testing.T) {
	d := newTestDirectory()
	alice := mustCreate(d, "Alice", 100)
	bob := mustCreate(d, "Bob", 200)
	_, err := alice.Deposit(dec("500"))
	require.NoError(t, err)

	require.NoError(t, alice.Transfer(bob, dec("200")))

	assert.True(t, alice.Balance().Equal(dec("300")))
	assert.True(t, bob.Balance().Equal(dec("200")))

	aliceHist := alice.History()
	require.Len(t, aliceHist, 2)
	assert.Equal(t, model.KindTransferSent, aliceHist[1].Kind)
	assert.Equal(t, "To Account 200", aliceHist[1].Note)
	assert.True(t, aliceHist[1].Amount.Equal(dec("200")))

	bobHist := bob.History()
	require.Len(t, bobHist, 1)
	assert.Equal(t, model.KindTransferReceived, bobHist[0].Kind)
	assert.Equal(t, "From Account 100", bobHist[0].Note)
	assert.Equal(t, "200-0001", bobHist[0].Ref)
}

func TestTransfer_Rejected(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0", ErrInvalidAmount},
		{"-10", ErrInvalidAmount},
		{"100.01", ErrInsufficientBalance},
	}
	for _, tt := range tests {
		d := newTestDirectory()
		alice := mustCreate(d, "Alice", 100)
		bob := mustCreate(d, "Bob", 200)
		_, err := alice.Deposit(dec("100"))
		require.NoError(t, err)
		_, err = bob.Deposit(dec("5"))
		require.NoError(t, err)

		err = alice.Transfer(bob, dec(tt.amount))
		require.ErrorIs(t, err, tt.want, "Transfer(%s)", tt.amount)
		assert.True(t, alice.Balance().Equal(dec("100")))
		assert.True(t, bob.Balance().Equal(dec("5")))
		assert.Len(t, alice.History(), 1)
		assert.Len(t, bob.History(), 1)
	}
}

func TestTransfer_NilReceiver(t *testing.T) {
	alice := mustCreate(newTestDirectory(), "Alice", 100)
	_, err := alice.Deposit(dec("10"))
	require.NoError(t, err)

	require.ErrorIs(t, alice.Transfer(nil, dec("5")), ErrAccountNotFound)
	assert.True(t, alice.Balance().Equal(dec("10")))
}

func TestTransfer_ReceiverBalanceNotChecked(t *testing.T) {
	d := newTestDirectory()
	alice := mustCreate(d, "Alice", 100)
	bob := mustCreate(d, "Bob", 200)
	_, err := alice.Deposit(dec("1000000"))
	require.NoError(t, err)
	_, err = bob.Deposit(dec("999999999"))
	require.NoError(t, err)

	require.NoError(t, alice.Transfer(bob, dec("1000000")))
	assert.True(t, bob.Balance().Equal(dec("1000999999")))
	assert.True(t, alice.Balance().IsZero())
}

func TestTransfer_Self(t *testing.T) {
	alice := mustCreate(newTestDirectory(), "Alice", 100)
	_, err := alice.Deposit(dec("50"))
	require.NoError(t, err)

	require.NoError(t, alice.Transfer(alice, dec("20")))
	assert.True(t, alice.Balance().Equal(dec("50")))

	hist := alice.History()
	require.Len(t, hist, 3)
	assert.Equal(t, model.KindTransferSent, hist[1].Kind)
	assert.Equal(t, model.KindTransferReceived, hist[2].Kind)
	assert.Empty(t, Validate(alice))
}

func TestBalanceMatchesHistory(t *testing.T) {
	d := newTestDirectory()
	a := mustCreate(d, "Alice", 1)
	b := mustCreate(d, "Bob", 2)

	// Repeated fractional operations must keep balance and history in step.
	for i := 0; i < 100; i++ {
		_, err := a.Deposit(dec("0.10"))
		require.NoError(t, err)
	}
	for i := 0; i < 30; i++ {
		require.NoError(t, a.Transfer(b, dec("0.10")))
	}
	for i := 0; i < 10; i++ {
		_, err := b.Withdraw(dec("0.20"))
		require.NoError(t, err)
	}
	_, err := a.Withdraw(dec("100"))
	require.ErrorIs(t, err, ErrInsufficientBalance)

	assert.Equal(t, "7.00", a.Balance().StringFixed(2))
	assert.Equal(t, "1.00", b.Balance().StringFixed(2))
	assert.True(t, model.Net(a.History()).Equal(a.Balance()))
	assert.True(t, model.Net(b.History()).Equal(b.Balance()))
	assert.Empty(t, Validate(a))
	assert.Empty(t, Validate(b))
}

func TestHistoryIsCopy(t *testing.T) {
	acct := mustCreate(newTestDirectory(), "Alice", 100)
	_, err := acct.Deposit(dec("5"))
	require.NoError(t, err)

	hist := acct.History()
	hist[0].Amount = dec("9999")
	assert.True(t, acct.History()[0].Amount.Equal(dec("5")))
}

func TestWriteHistory_Empty(t *testing.T) {
	acct := mustCreate(newTestDirectory(), "Alice", 100)

	var buf bytes.Buffer
	require.NoError(t, acct.WriteHistory(&buf, "₹"))
	assert.Equal(t, "\nTransaction History:\nNo transactions available.\n", buf.String())
}

func TestWriteDetails(t *testing.T) {
	d := newTestDirectory()
	alice := mustCreate(d, "Alice", 100)
	bob := mustCreate(d, "Bob", 200)
	_, err := alice.Deposit(dec("500"))
	require.NoError(t, err)
	require.NoError(t, alice.Transfer(bob, dec("200")))

	var buf bytes.Buffer
	require.NoError(t, alice.WriteDetails(&buf, "$"))
	want := "\nAccount Number: 100\n" +
		"Current Balance: $300.00\n" +
		"\nTransaction History:\n" +
		"- Deposit: $500 (Money Deposited)\n" +
		"- Transfer Sent: $200 (To Account 200)\n"
	assert.Equal(t, want, buf.String())
}
