package reports

import (
	"bufio"
	"io"
	"strings"
)

// WriteCSV renders the report with a header of column labels. Every field is
// quoted, embedded quotes are doubled and rows end with "\n".
func WriteCSV(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	header := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		header[i] = c.Label
	}
	if err := writeRecord(bw, header); err != nil {
		return err
	}

	record := make([]string, len(r.Columns))
	for _, row := range r.Rows {
		for i, c := range r.Columns {
			record[i] = row[c.Key]
		}
		if err := writeRecord(bw, record); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// FileName is the download name of a rendered report, e.g. relatorio-equipment-2024-01-20.csv.
func FileName(kind Kind, date string) string {
	return "relatorio-" + string(kind) + "-" + date + ".csv"
}
