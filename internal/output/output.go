// Package output provides multi-format output rendering for CLI commands.
// Supports table (human-readable), JSON, and CSV formats, plus the raw
// dataset CSV written by the generate pipeline.
package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat converts a string to a Format, returning an error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be table, json, or csv", s)
	}
}

// RunRecord represents a stored generation run for output
type RunRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Seed      int64     `json:"seed"`
	RowCount  int64     `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ObservationRecord represents a stored observation row for output
type ObservationRecord struct {
	ID       int64   `json:"id"`
	Run      string  `json:"run"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Printer handles output formatting
type Printer struct {
	format Format
	writer io.Writer
}

// NewPrinter creates a new Printer with the specified format
func NewPrinter(format Format) *Printer {
	return &Printer{
		format: format,
		writer: os.Stdout,
	}
}

// WithWriter sets a custom writer (useful for testing)
func (p *Printer) WithWriter(w io.Writer) *Printer {
	p.writer = w
	return p
}

// PrintRuns outputs run records in the configured format
func (p *Printer) PrintRuns(records []RunRecord) error {
	switch p.format {
	case FormatJSON:
		return p.printRunsJSON(records)
	case FormatCSV:
		return p.printRunsCSV(records)
	default:
		return p.printRunsTable(records)
	}
}

// PrintObservations outputs observation records in the configured format
func (p *Printer) PrintObservations(records []ObservationRecord) error {
	switch p.format {
	case FormatJSON:
		return p.printObservationsJSON(records)
	case FormatCSV:
		return p.printObservationsCSV(records)
	default:
		return p.printObservationsTable(records)
	}
}
