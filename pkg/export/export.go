// Package export writes simulation reports in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/verticore/liftsim/core/report"
)

// WriteJSON writes the full report to w in JSON format.
func WriteJSON(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes the hourly wait breakdown to w as CSV.
func WriteCSV(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hour", "deliveries", "average_wait_steps"}); err != nil {
		return err
	}
	for _, h := range r.Hourly {
		rec := []string{
			strconv.Itoa(h.Hour),
			strconv.Itoa(h.Deliveries),
			strconv.FormatFloat(h.AverageWaitSteps, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
