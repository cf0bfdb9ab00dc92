// Package report renders the line-per-match PDF report.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"nonb/scan"
)

// DefaultTitle is the standard report heading.
const DefaultTitle = "DNA Motif Analysis Report"

// Write renders one "<id> | <motif> | Start: n | End: n" line per row
// under a title heading, breaking pages as needed, and writes the
// finished document to w.
func Write(w io.Writer, title string, t scan.Table) error {
	if title == "" {
		title = DefaultTitle
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range t {
		line := fmt.Sprintf("%s | %s | Start: %d | End: %d", r.SequenceID, r.Motif, r.Start, r.End)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	return pdf.Output(w)
}

// WriteFile renders the report to path.
func WriteFile(path, title string, t scan.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, title, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
