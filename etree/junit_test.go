package etree_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	beevik "github.com/beevik/etree"
	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *seolint.Report {
	details := []*seolint.ComplianceResult{
		{
			Slug:      "compliant-post",
			Compliant: true,
			Errors:    []string{},
			Warnings:  []string{"Only 1 internal links found, minimum required: 3"},
		},
		{
			Slug:      "broken-post",
			Compliant: false,
			Errors: []string{
				"Title length (10) should be between 50-60 characters",
				"Meta description length (0) should be between 150-160 characters",
			},
			Warnings: []string{},
		},
	}
	return &seolint.Report{
		ID:        "run-1",
		Timestamp: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Root:      "content/blog",
		Summary:   seolint.Summarize(details),
		Details:   details,
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	doc := etree.Build(testReport())

	suites := doc.SelectElement("testsuites")
	require.NotNil(t, suites)
	assert.Equal(t, "2", suites.SelectAttrValue("tests", ""))
	assert.Equal(t, "1", suites.SelectAttrValue("failures", ""))

	suite := suites.SelectElement("testsuite")
	require.NotNil(t, suite)
	assert.Equal(t, "content/blog", suite.SelectAttrValue("name", ""))
	assert.Equal(t, "2026-03-04T05:06:07Z", suite.SelectAttrValue("timestamp", ""))

	rate := suite.FindElement("properties/property[@name='complianceRate']")
	require.NotNil(t, rate)
	assert.Equal(t, "50", rate.SelectAttrValue("value", ""))

	cases := suite.SelectElements("testcase")
	require.Len(t, cases, 2)

	assert.Equal(t, "compliant-post", cases[0].SelectAttrValue("name", ""))
	assert.Nil(t, cases[0].SelectElement("failure"))
	require.NotNil(t, cases[0].SelectElement("system-out"))
	assert.Equal(t, "Only 1 internal links found, minimum required: 3", cases[0].SelectElement("system-out").Text())

	failure := cases[1].SelectElement("failure")
	require.NotNil(t, failure)
	assert.Equal(t, "2 compliance errors", failure.SelectAttrValue("message", ""))
	assert.Contains(t, failure.Text(), "Title length (10)")
	assert.Contains(t, failure.Text(), "Meta description length (0)")
}

func TestJUnitExporter_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "junit.xml")

	err := etree.NewJUnitExporter().Export(testReport(), path)

	require.NoError(t, err)
	doc := beevik.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))
	assert.Len(t, doc.FindElements("//testcase"), 2)
}

func TestJUnitExporter_ExportPropagatesErrors(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := etree.NewJUnitExporter().Export(testReport(), filepath.Join(blocker, "junit.xml"))

	assert.Error(t, err)
}
