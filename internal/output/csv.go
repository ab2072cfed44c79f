package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"pricing-datagen/internal/generator"
)

// WriteDataset writes the raw dataset CSV: a Price,Quantity header followed
// by one row per observation, no index column.
func WriteDataset(w io.Writer, rows []generator.Observation) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Price", "Quantity"}); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			strconv.FormatFloat(r.Quantity, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Error()
}

func (p *Printer) printRunsCSV(records []RunRecord) error {
	w := csv.NewWriter(p.writer)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "seed", "row_count", "created_at"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatInt(r.RowCount, 10),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func (p *Printer) printObservationsCSV(records []ObservationRecord) error {
	w := csv.NewWriter(p.writer)
	defer w.Flush()

	if err := w.Write([]string{"id", "run", "price", "quantity"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Run,
			strconv.FormatFloat(r.Price, 'f', 6, 64),
			strconv.FormatFloat(r.Quantity, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
