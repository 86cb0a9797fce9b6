package menu

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleared-dev/tally/internal/ledger"
)

// Choice is a menu selector.
type Choice int

// Menu selectors, numbered as shown to the operator.
const (
	ChoiceCreate Choice = iota + 1
	ChoiceDeposit
	ChoiceWithdraw
	ChoiceTransfer
	ChoiceDetails
	ChoiceExit
)

// Errors reported for operator input the menu cannot act on.
var (
	// ErrInvalidChoice is returned for a selector outside 1-6.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrInvalidNumber is wrapped when a numeric field holds a non-numeric or
	// out-of-range token.
	ErrInvalidNumber = errors.New("invalid number")
)

// Request is one fully-read menu action. Only the fields the choice needs
// are consulted.
type Request struct {
	Choice   Choice
	Name     string
	Account  int
	Receiver int
	Amount   decimal.Decimal
}

// Result is what the operator sees after a request.
type Result struct {
	Message string
	Err     error
	Exit    bool
}

type handlerFunc func(s *Session, req Request) Result

var handlers = map[Choice]handlerFunc{
	ChoiceCreate:   handleCreate,
	ChoiceDeposit:  handleDeposit,
	ChoiceWithdraw: handleWithdraw,
	ChoiceTransfer: handleTransfer,
	ChoiceDetails:  handleDetails,
	ChoiceExit:     handleExit,
}

// Session owns the Directory for one operator run.
type Session struct {
	dir      *ledger.Directory
	bankName string
	currency string
	log      *zap.Logger
}

// NewSession creates a Session over dir. A nil logger disables logging.
func NewSession(dir *ledger.Directory, bankName, currency string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{dir: dir, bankName: bankName, currency: currency, log: log}
}

// Directory returns the session's directory.
func (s *Session) Directory() *ledger.Directory {
	return s.dir
}

// Handle dispatches req to its handler.
func (s *Session) Handle(req Request) Result {
	h, ok := handlers[req.Choice]
	if !ok {
		s.log.Info("rejected menu choice", zap.Int("choice", int(req.Choice)))
		return Result{Message: "Invalid choice. Please try again.", Err: ErrInvalidChoice}
	}

	res := h(s, req)
	if res.Err != nil {
		s.log.Info("operation rejected",
			zap.Int("choice", int(req.Choice)),
			zap.Int("account", req.Account),
			zap.Stringer("amount", req.Amount),
			zap.Error(res.Err))
	} else {
		s.log.Debug("operation applied",
			zap.Int("choice", int(req.Choice)),
			zap.Int("account", req.Account))
	}
	return res
}

func (s *Session) money(d decimal.Decimal) string {
	return s.currency + d.String()
}

func handleCreate(s *Session, req Request) Result {
	if _, err := s.dir.Create(req.Name, req.Account); err != nil {
		return Result{Message: "Account number already exists.", Err: err}
	}
	return Result{Message: "Account created successfully for " + req.Name}
}

func handleDeposit(s *Session, req Request) Result {
	c, err := s.dir.Find(req.Account)
	if err != nil {
		return notFound(err)
	}
	bal, err := c.Account().Deposit(req.Amount)
	if err != nil {
		return Result{Message: "Invalid deposit amount.", Err: err}
	}
	return Result{Message: fmt.Sprintf("%s deposited successfully. New balance: %s", s.money(req.Amount), s.money(bal))}
}

func handleWithdraw(s *Session, req Request) Result {
	c, err := s.dir.Find(req.Account)
	if err != nil {
		return notFound(err)
	}
	bal, err := c.Account().Withdraw(req.Amount)
	if err != nil {
		return debitFailure(err)
	}
	return Result{Message: fmt.Sprintf("%s withdrawn successfully. New balance: %s", s.money(req.Amount), s.money(bal))}
}

func handleTransfer(s *Session, req Request) Result {
	sender, err := s.dir.Find(req.Account)
	if err != nil {
		return notFound(err)
	}
	receiver, err := s.dir.Find(req.Receiver)
	if err != nil {
		return Result{Message: "Receiver account not found.", Err: err}
	}
	if err := sender.Account().Transfer(receiver.Account(), req.Amount); err != nil {
		return debitFailure(err)
	}
	return Result{Message: fmt.Sprintf("%s transferred to Account %d", s.money(req.Amount), req.Receiver)}
}

func handleDetails(s *Session, req Request) Result {
	c, err := s.dir.Find(req.Account)
	if err != nil {
		return notFound(err)
	}
	var buf bytes.Buffer
	if err := c.WriteDetails(&buf, s.currency); err != nil {
		return Result{Message: "Could not render account details.", Err: err}
	}
	return Result{Message: buf.String()}
}

func handleExit(_ *Session, _ Request) Result {
	return Result{Message: "Exiting Banking System. Goodbye!", Exit: true}
}

func notFound(err error) Result {
	return Result{Message: "Account not found.", Err: err}
}

func debitFailure(err error) Result {
	if errors.Is(err, ledger.ErrInsufficientBalance) {
		return Result{Message: "Insufficient balance.", Err: err}
	}
	return Result{Message: "Invalid amount.", Err: err}
}
