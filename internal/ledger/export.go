package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ExportStatements writes each account's history to <dir>/<number>.csv and
// returns the written paths in creation order. Each file is read back and
// checked against the account balance. Export stops at the first account that
// fails validation or cannot be written; the paths written before it are
// returned with the error.
func ExportStatements(dir string, d *Directory) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	var paths []string
	for _, c := range d.customers {
		acct := c.account
		if err := joinValidation(Validate(acct)); err != nil {
			return paths, err
		}

		path := filepath.Join(dir, strconv.Itoa(acct.number)+".csv")
		if err := writeStatement(path, acct); err != nil {
			return paths, err
		}
		if err := verifyStatement(path, acct); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeStatement(path string, acct *Account) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing statement file: %w", cerr))
		}
	}()

	if err := WriteHistoryCSV(f, acct.history); err != nil {
		return fmt.Errorf("writing statement for account %d: %w", acct.number, err)
	}
	return nil
}

// verifyStatement reads a written statement back and validates it against
// the account's balance, catching truncated or partial files.
func verifyStatement(path string, acct *Account) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadHistoryCSV(f)
	if err != nil {
		return fmt.Errorf("reading statement %s: %w", path, err)
	}
	if len(txns) != len(acct.history) {
		return fmt.Errorf("statement %s has %d rows, account %d has %d transactions", path, len(txns), acct.number, len(acct.history))
	}
	if err := joinValidation(ValidateHistory(acct.number, acct.balance, txns)); err != nil {
		return fmt.Errorf("statement %s: %w", path, err)
	}
	return nil
}

func joinValidation(verrs []ValidationError) error {
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
