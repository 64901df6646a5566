// Package etree writes compliance reports as JUnit XML so CI systems can
// show non-compliant articles as failed tests.
package etree

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/seolint"
)

// Ensure JUnitExporter implements seolint.Exporter at compile time.
var _ seolint.Exporter = (*JUnitExporter)(nil)

// JUnitExporter writes one test case per document. Errors become a
// failure element; warnings are listed in system-out and do not fail.
type JUnitExporter struct{}

// NewJUnitExporter creates a new JUnitExporter.
func NewJUnitExporter() *JUnitExporter {
	return &JUnitExporter{}
}

// Export writes the report to path.
func (e *JUnitExporter) Export(report *seolint.Report, path string) error {
	doc := Build(report)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return doc.WriteToFile(path)
}

// Build returns the JUnit document for a report.
func Build(report *seolint.Report) *etree.Document {
	failures := 0
	for _, r := range report.Details {
		if !r.Compliant {
			failures++
		}
	}
	tests := strconv.Itoa(len(report.Details))

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	suites := doc.CreateElement("testsuites")
	suites.CreateAttr("name", "seolint")
	suites.CreateAttr("tests", tests)
	suites.CreateAttr("failures", strconv.Itoa(failures))

	suite := suites.CreateElement("testsuite")
	suite.CreateAttr("name", report.Root)
	suite.CreateAttr("id", report.ID)
	suite.CreateAttr("tests", tests)
	suite.CreateAttr("failures", strconv.Itoa(failures))
	suite.CreateAttr("errors", "0")
	suite.CreateAttr("timestamp", report.Timestamp.UTC().Format(time.RFC3339))

	if report.Summary != nil {
		props := suite.CreateElement("properties")
		addProperty(props, "complianceRate", strconv.FormatFloat(report.Summary.ComplianceRate, 'f', -1, 64))
		addProperty(props, "compliantArticles", strconv.Itoa(report.Summary.CompliantArticles))
	}

	for _, r := range report.Details {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", "seolint")
		tc.CreateAttr("name", r.Slug)

		if len(r.Errors) > 0 {
			failure := tc.CreateElement("failure")
			failure.CreateAttr("type", string(seolint.SeverityError))
			failure.CreateAttr("message", fmt.Sprintf("%d compliance errors", len(r.Errors)))
			failure.SetText(strings.Join(r.Errors, "\n"))
		}
		if len(r.Warnings) > 0 {
			tc.CreateElement("system-out").SetText(strings.Join(r.Warnings, "\n"))
		}
	}

	doc.Indent(2)
	return doc
}

func addProperty(props *etree.Element, name, value string) {
	p := props.CreateElement("property")
	p.CreateAttr("name", name)
	p.CreateAttr("value", value)
}
