// Package export turns record collections into tabular form for CSV download
// and for the column-descriptor payloads the dashboard tables consume.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render kinds tag how a column's values should be presented. They are
// carried as data, never interpreted server-side beyond CSV formatting.
const (
	KindText     = "text"
	KindNumber   = "number"
	KindCurrency = "currency"
	KindPercent  = "percent"
	KindDate     = "date"
	KindBadge    = "badge"
)

// Column describes one exported column: the payload field it reads, the
// header shown to the reader, and the render kind of its values.
type Column struct {
	Field  string `json:"field"`
	Header string `json:"header"`
	Kind   string `json:"kind"`
}

// Table is a fully materialized export: ordered columns plus row cells
// aligned to them.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// WriteCSV writes the table as CSV. Values are already formatted; this only
// handles quoting and layout.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(t.Columns))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatCurrency renders a euro amount with thousand separators and no
// decimals, e.g. 1250000 -> "€1,250,000".
func FormatCurrency(v float64) string {
	return "€" + groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
}

// FormatNumber renders an integer count with thousand separators.
func FormatNumber(n int) string {
	return groupThousands(strconv.Itoa(n))
}

// FormatPercent renders a percentage with one decimal, e.g. 18.4 -> "18.4%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
