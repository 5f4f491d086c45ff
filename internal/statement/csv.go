package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Header is the CSV header for an exported movement listing.
const Header = "index,direction,amount"

const (
	numFields    = 3
	colIndex     = 0
	colDirection = 1
	colAmount    = 2
)

// WriteMovements writes a movement listing as CSV, header included.
func WriteMovements(w io.Writer, movements []decimal.Decimal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, m := range movements {
		row := make([]string, numFields)
		row[colIndex] = strconv.Itoa(i + 1)
		row[colDirection] = Direction(m)
		row[colAmount] = m.String()
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadMovements reads a movement listing back from CSV, returning the
// signed amounts in row order.
func ReadMovements(r io.Reader) ([]decimal.Decimal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading movements CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var movements []decimal.Decimal
	for i, rec := range records[1:] {
		amt, err := decimal.NewFromString(rec[colAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[colAmount], err)
		}
		movements = append(movements, amt)
	}
	return movements, nil
}
