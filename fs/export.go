package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/seolint"
)

// Report file names written into the output directory.
const (
	JSONReportName = "seo-compliance-report.json"
	CSVReportName  = "seo-compliance-report.csv"
)

// CSVHeader is the header row of the tabular report.
var CSVHeader = []string{
	"slug",
	"title",
	"keyword",
	"compliant",
	"title_compliant",
	"meta_description_compliant",
	"keyword_density_compliant",
	"internal_links_compliant",
	"images_compliant",
	"keyword_in_title",
	"keyword_in_description",
	"keyword_in_first_paragraph",
	"keyword_in_conclusion",
	"title_length",
	"description_length",
	"keyword_density",
	"internal_links",
	"issues",
	"recommendations",
}

// Ensure exporters implement seolint.Exporter at compile time.
var (
	_ seolint.Exporter = (*JSONExporter)(nil)
	_ seolint.Exporter = (*CSVExporter)(nil)
)

// JSONExporter writes the full report as indented JSON.
type JSONExporter struct{}

// Export implements seolint.Exporter.
func (e *JSONExporter) Export(report *seolint.Report, path string) error {
	return ExportJSON(report, path)
}

// CSVExporter writes one row per document.
type CSVExporter struct{}

// Export implements seolint.Exporter.
func (e *CSVExporter) Export(report *seolint.Report, path string) error {
	return ExportCSV(report.Details, path)
}

// ExportJSON writes the report with summary and per-document detail to path.
func ExportJSON(report *seolint.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, append(data, '\n'))
}

// ExportCSV writes one row per result to path. Issues and recommendations
// are joined with "; ".
func ExportCSV(results []*seolint.ComplianceResult, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return WriteFileAtomic(path, buf.Bytes())
}

func csvRecord(r *seolint.ComplianceResult) []string {
	f := r.Flags
	return []string{
		r.Slug,
		r.Title,
		r.Keyword,
		strconv.FormatBool(r.Compliant),
		strconv.FormatBool(f.TitleCompliant),
		strconv.FormatBool(f.MetaDescriptionCompliant),
		strconv.FormatBool(f.KeywordDensityCompliant),
		strconv.FormatBool(f.InternalLinksCompliant),
		strconv.FormatBool(f.ImagesCompliant),
		strconv.FormatBool(f.KeywordInTitle),
		strconv.FormatBool(f.KeywordInDescription),
		strconv.FormatBool(f.KeywordInFirstParagraph),
		strconv.FormatBool(f.KeywordInConclusion),
		strconv.Itoa(r.Metrics.TitleLength),
		strconv.Itoa(r.Metrics.DescriptionLength),
		strconv.FormatFloat(r.Metrics.KeywordDensity, 'f', 2, 64),
		strconv.Itoa(r.Metrics.InternalLinkCount),
		strings.Join(r.Issues(), "; "),
		strings.Join(r.Recommendations, "; "),
	}
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, creating parent directories as needed. Readers never see
// a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
