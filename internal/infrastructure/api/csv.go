package api

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"course-order-export/internal/domain"
)

// exportFilename names the CSV download for a date range
func exportFilename(startDate, endDate string) string {
	return fmt.Sprintf("rcfc-courses-%s-to-%s.csv", startDate, endDate)
}

// writeExportCSV writes a plain header line followed by one line per record.
// Every data cell is quoted with embedded quotes doubled, and lines end in \n.
func writeExportCSV(w io.Writer, records []domain.ExportRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(domain.ExportColumns, ",")); err != nil {
		return err
	}
	for _, r := range records {
		row := r.Row()
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		if _, err := bw.WriteString("\n" + strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
