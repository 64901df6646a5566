package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/analyze"
	"github.com/fwojciec/seolint/etree"
	"github.com/fwojciec/seolint/fs"
	"github.com/fwojciec/seolint/gofpdf"
	"github.com/fwojciec/seolint/lipgloss"
	"github.com/fwojciec/seolint/prometheus"
	seoslog "github.com/fwojciec/seolint/slog"
	"github.com/fwojciec/seolint/yaml"
)

// Optional report file names written into the output directory.
const (
	JUnitReportName = "seo-compliance-report.xml"
	PDFReportName   = "seo-compliance-report.pdf"
	MetricsFileName = "seolint.prom"

	maxSlugDisplay = 60
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	report, err := c.execute(deps)
	if err != nil {
		return err
	}

	if c.MinRate > 0 && report.Summary.ComplianceRate < c.MinRate {
		fmt.Fprintf(deps.Stderr, "error: compliance rate %.2f%% is below %.2f%%\n", report.Summary.ComplianceRate, c.MinRate)
		return seolint.Errorf(seolint.EINVALID, "compliance rate %.2f%% is below %.2f%%", report.Summary.ComplianceRate, c.MinRate)
	}
	return nil
}

// execute analyzes the corpus, writes the reports, records the run and
// prints the console summary.
func (f *AnalyzeFlags) execute(deps *Dependencies) (*seolint.Report, error) {
	cfg, err := loadConfig(f.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
		return nil, err
	}
	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}

	var corpus seolint.Corpus = fs.NewCorpus(f.Root, cfg.EntryFiles)
	if deps.Logger != nil {
		corpus = seoslog.NewLoggingCorpus(corpus, deps.Logger)
	}

	analyzer := analyze.NewAnalyzer(corpus)
	analyzer.Root = f.Root
	analyzer.Thresholds = cfg.Thresholds
	analyzer.Concurrency = cfg.Concurrency
	if deps.Logger != nil {
		analyzer.Extractors = analyzer.Extractors.Wrap(func(e seolint.Extractor) seolint.Extractor {
			return seoslog.NewLoggingExtractor(e, deps.Logger)
		})
	}

	progress := func(event analyze.ProgressEvent) {
		switch event.Type {
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", analyze.TruncateSlug(event.Slug, maxSlugDisplay), event.Error)
		case analyze.ProgressCompleted:
			if deps.Logger != nil {
				deps.Logger.Debug("analyzed",
					"slug", analyze.TruncateSlug(event.Slug, maxSlugDisplay),
					"progress", fmt.Sprintf("%d/%d", event.Completed, event.Total),
					"compliant", event.Compliant)
			}
		}
	}

	report, err := analyzer.Analyze(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error analyzing %s: %v\n", f.Root, err)
		return nil, err
	}

	// The previous run is looked up before this one is recorded.
	var prev *seolint.Run
	record := deps.Runs != nil && !f.NoHistory
	if record {
		runs, err := deps.Runs.FindRuns(deps.Ctx, seolint.RunFilter{Root: &f.Root, Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
			return nil, err
		}
		if len(runs) > 0 {
			prev = runs[0]
		}
	}

	paths, err := f.export(report, deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing reports: %v\n", err)
		return nil, err
	}

	if record {
		if err := deps.Runs.CreateRun(deps.Ctx, seolint.NewRun(report)); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
			return nil, err
		}
	}

	printer := lipgloss.NewPrinter(deps.Stdout)
	printer.PrintSummary(report)
	printer.PrintComparison(prev, report)
	printer.PrintFiles(paths)

	return report, nil
}

type exportTarget struct {
	format   string
	name     string
	exporter seolint.Exporter
}

// export writes every requested report format and returns the written paths.
func (f *AnalyzeFlags) export(report *seolint.Report, logger *slog.Logger) ([]string, error) {
	targets := []exportTarget{
		{"json", fs.JSONReportName, &fs.JSONExporter{}},
		{"csv", fs.CSVReportName, &fs.CSVExporter{}},
	}
	if f.JUnit {
		targets = append(targets, exportTarget{"junit", JUnitReportName, etree.NewJUnitExporter()})
	}
	if f.PDF {
		targets = append(targets, exportTarget{"pdf", PDFReportName, gofpdf.NewExporter()})
	}
	if f.Metrics {
		targets = append(targets, exportTarget{"prometheus", MetricsFileName, prometheus.NewTextfileExporter()})
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		exporter := t.exporter
		if logger != nil {
			exporter = seoslog.NewLoggingExporter(exporter, t.format, logger)
		}
		path := filepath.Join(f.Output, t.name)
		if err := exporter.Export(report, path); err != nil {
			return nil, fmt.Errorf("%s report: %w", t.format, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (*seolint.Config, error) {
	if path == "" {
		return seolint.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}
