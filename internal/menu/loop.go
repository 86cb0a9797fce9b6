package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// errEOF ends the loop when input runs out mid-action.
var errEOF = errors.New("end of input")

// numberError reports a token that should have been numeric.
type numberError struct {
	token string
}

func (e *numberError) Error() string { return "invalid number: " + e.token }

func (e *numberError) Unwrap() error { return ErrInvalidNumber }

// console pairs a token scanner with a writer that remembers its first error.
type console struct {
	in  *bufio.Scanner
	out io.Writer
	err error
}

func (c *console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}

func (c *console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if c.err != nil {
		return "", c.err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errEOF
	}
	return c.in.Text(), nil
}

func (c *console) promptInt(label string) (int, error) {
	tok, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &numberError{token: tok}
	}
	return n, nil
}

func (c *console) promptAmount(label string) (decimal.Decimal, error) {
	tok, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(tok)
	if err != nil || !amountInRange(d) {
		return decimal.Zero, &numberError{token: tok}
	}
	return d, nil
}

// Amounts are limited to this many digits on either side of the decimal
// point. Exponent notation can otherwise describe values whose rendering
// runs to millions of digits.
const (
	maxIntegerDigits  = 18
	maxFractionDigits = 18
)

func amountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= maxIntegerDigits
}

func (c *console) show(res Result) {
	c.printf("%s\n", strings.TrimSuffix(res.Message, "\n"))
}

// Run drives the menu over whitespace-delimited tokens from in until the
// operator exits or input ends. Business errors are shown and the menu is
// offered again; only I/O failures are returned.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	c := &console{in: sc, out: out}

	for {
		req, res, err := s.read(c)
		var numErr *numberError
		switch {
		case errors.Is(err, errEOF):
			s.log.Debug("input closed")
			return c.err
		case errors.As(err, &numErr):
			s.log.Info("rejected input", zap.Int("choice", int(req.Choice)), zap.String("token", numErr.token))
			c.printf("Invalid number: %s\n", numErr.token)
		case err != nil:
			return err
		case res != nil:
			c.show(*res)
		default:
			r := s.Handle(req)
			c.show(r)
			if r.Exit {
				return c.err
			}
		}
		if c.err != nil {
			return fmt.Errorf("writing output: %w", c.err)
		}
	}
}

// read collects one request. A non-nil Result means the action was settled
// early by a failed account lookup and there is nothing to dispatch.
func (s *Session) read(c *console) (Request, *Result, error) {
	c.printf("\n====== %s Menu ======\n", s.bankName)
	c.printf("1. Create Customer Account\n")
	c.printf("2. Deposit Money\n")
	c.printf("3. Withdraw Money\n")
	c.printf("4. Transfer Funds\n")
	c.printf("5. Show Account Details\n")
	c.printf("6. Exit\n")

	tok, err := c.prompt("Choose an option: ")
	if err != nil {
		return Request{}, nil, err
	}
	n, convErr := strconv.Atoi(tok)
	req := Request{Choice: Choice(n)}
	if convErr != nil {
		req.Choice = 0
	}

	switch req.Choice {
	case ChoiceCreate:
		if req.Name, err = c.prompt("\nEnter customer name: "); err != nil {
			return req, nil, err
		}
		if req.Account, err = c.promptInt("Enter new account number: "); err != nil {
			return req, nil, err
		}
		return req, nil, nil

	case ChoiceDeposit, ChoiceWithdraw, ChoiceTransfer, ChoiceDetails:
		if req.Account, err = c.promptInt("Enter your account number: "); err != nil {
			return req, nil, err
		}
		if _, err := s.dir.Find(req.Account); err != nil {
			res := notFound(err)
			s.log.Info("lookup failed", zap.Int("account", req.Account))
			return req, &res, nil
		}

	case ChoiceExit:
		return req, nil, nil

	default:
		// Let Handle report the invalid choice.
		return req, nil, nil
	}

	switch req.Choice {
	case ChoiceDeposit:
		req.Amount, err = c.promptAmount("Enter amount to deposit: ")
	case ChoiceWithdraw:
		req.Amount, err = c.promptAmount("Enter amount to withdraw: ")
	case ChoiceTransfer:
		if req.Receiver, err = c.promptInt("Enter receiver's account number: "); err != nil {
			return req, nil, err
		}
		if _, err := s.dir.Find(req.Receiver); err != nil {
			res := Result{Message: "Receiver account not found.", Err: err}
			s.log.Info("lookup failed", zap.Int("receiver", req.Receiver))
			return req, &res, nil
		}
		req.Amount, err = c.promptAmount("Enter amount to transfer: ")
	}
	return req, nil, err
}
