package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

func (p *Printer) printRunsTable(records []RunRecord) error {
	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSEED\tROWS\tCREATED_AT")
	_, _ = fmt.Fprintln(w, "---\t---\t---\t---\t---")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			r.ID, r.Name, r.Seed, humanize.Comma(r.RowCount),
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(p.writer, "\nTotal results: %d\n", len(records))
	return nil
}

func (p *Printer) printObservationsTable(records []ObservationRecord) error {
	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tRUN\tPRICE\tQUANTITY")
	_, _ = fmt.Fprintln(w, "---\t---\t---\t---")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%.6f\t%.6f\n",
			r.ID, r.Run, r.Price, r.Quantity)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(p.writer, "\nTotal results: %d\n", len(records))
	return nil
}
