package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// HistoryHeader is the CSV header for an account statement.
const HistoryHeader = "ref,time,kind,amount,note"

const (
	numFields = 5
	colRef    = 0
	colTime   = 1
	colKind   = 2
	colAmount = 3
	colNote   = 4
)

// WriteHistoryCSV writes txns (including header).
func WriteHistoryCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(HistoryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	// csv.Writer buffers; write errors only surface on Flush.
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing history CSV: %w", err)
	}
	return nil
}

// ReadHistoryCSV reads a statement written by WriteHistoryCSV.
func ReadHistoryCSV(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading history CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colRef] = t.Ref
	row[colTime] = t.Time.Format(time.RFC3339Nano)
	row[colKind] = string(t.Kind)
	row[colAmount] = t.Amount.String()
	row[colNote] = t.Note
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339Nano, record[colTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing time %q: %w", record[colTime], err)
	}

	kind := model.Kind(record[colKind])
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown kind %q", record[colKind])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		Ref:    record[colRef],
		Time:   ts,
		Kind:   kind,
		Amount: amount,
		Note:   record[colNote],
	}, nil
}
