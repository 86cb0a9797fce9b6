package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRef returns a transaction reference like "100-0003".
func FormatRef(account, seq int) string {
	return fmt.Sprintf("%d-%04d", account, seq)
}

// ParseRef parses "100-0003" into account and seq. Account numbers may be
// negative, so the split is on the last hyphen.
func ParseRef(ref string) (account, seq int, err error) {
	i := strings.LastIndexByte(ref, '-')
	if i <= 0 || i == len(ref)-1 {
		return 0, 0, fmt.Errorf("invalid transaction ref format: %q", ref)
	}

	account, err = strconv.Atoi(ref[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid account in transaction ref %q: %w", ref, err)
	}

	seq, err = strconv.Atoi(ref[i+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in transaction ref %q: %w", ref, err)
	}
	if seq < 1 {
		return 0, 0, fmt.Errorf("invalid sequence in transaction ref %q: must be positive", ref)
	}

	return account, seq, nil
}
