// Package gofpdf renders compliance reports as printable PDF documents.
package gofpdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/seolint"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Exporter implements seolint.Exporter at compile time.
var _ seolint.Exporter = (*Exporter)(nil)

// Column layout of the per-document table, in millimetres.
var columns = []struct {
	header string
	width  float64
	align  string
}{
	{"Slug", 62, "L"},
	{"OK", 12, "C"},
	{"Title", 16, "R"},
	{"Desc", 16, "R"},
	{"Density", 20, "R"},
	{"Links", 16, "R"},
	{"Errors", 16, "R"},
	{"Warn", 16, "R"},
}

// Exporter writes a PDF with the corpus summary, a per-document table and
// the issues of every non-compliant document.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the report to path.
func (e *Exporter) Export(report *seolint.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return build(report).OutputFileAndClose(path)
}

// Render writes the PDF to w.
func (e *Exporter) Render(report *seolint.Report, w io.Writer) error {
	return build(report).Output(w)
}

func build(report *seolint.Report) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(report.Timestamp)
	pdf.SetTitle("SEO Compliance Report", true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "SEO Compliance Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Root: "+report.Root), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Generated: "+report.Timestamp.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Run: "+report.ID, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if s := report.Summary; s != nil {
		heading(pdf, "Summary")
		pdf.CellFormat(0, 5, fmt.Sprintf("Articles: %d   Compliant: %d   Compliance rate: %.2f%%",
			s.TotalArticles, s.CompliantArticles, s.ComplianceRate), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		if len(s.TopIssues) > 0 {
			heading(pdf, "Top issues")
			for _, ic := range s.TopIssues {
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("%3d  %s", ic.Count, ic.Issue)), "", "L", false)
			}
			pdf.Ln(3)
		}

		if len(s.Recommendations) > 0 {
			heading(pdf, "Recommendations")
			for _, rec := range s.Recommendations {
				pdf.MultiCell(0, 5, tr("- "+rec), "", "L", false)
			}
			pdf.Ln(3)
		}
	}

	heading(pdf, "Articles")
	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range columns {
		pdf.CellFormat(c.width, 6, c.header, "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range report.Details {
		ok := "no"
		if r.Compliant {
			ok = "yes"
		}
		cells := []string{
			tr(truncate(r.Slug, 40)),
			ok,
			fmt.Sprint(r.Metrics.TitleLength),
			fmt.Sprint(r.Metrics.DescriptionLength),
			fmt.Sprintf("%.2f%%", r.Metrics.KeywordDensity),
			fmt.Sprint(r.Metrics.InternalLinkCount),
			fmt.Sprint(len(r.Errors)),
			fmt.Sprint(len(r.Warnings)),
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var failing []*seolint.ComplianceResult
	for _, r := range report.Details {
		if !r.Compliant {
			failing = append(failing, r)
		}
	}
	if len(failing) > 0 {
		pdf.Ln(4)
		heading(pdf, "Non-compliant articles")
		for _, r := range failing {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, tr(r.Slug), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			for _, issue := range r.Issues() {
				pdf.MultiCell(0, 4.5, tr("- "+issue), "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	return pdf
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "~"
}
