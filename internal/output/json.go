package output

import (
	"encoding/json"
)

func (p *Printer) printRunsJSON(records []RunRecord) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func (p *Printer) printObservationsJSON(records []ObservationRecord) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
