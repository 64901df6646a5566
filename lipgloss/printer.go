// Package lipgloss renders human-readable console output for seolint.
// Colours are only emitted when the destination is a terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/seolint"
)

// Theme defines the colour palette of console output.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Printer writes styled summaries to a writer.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a Printer for w using the default theme.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithTheme(w, DefaultTheme())
}

// NewPrinterWithTheme creates a Printer for w using theme.
func NewPrinterWithTheme(w io.Writer, theme *Theme) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		heading: r.NewStyle().Bold(true),
		label:   r.NewStyle().Width(12),
		muted:   r.NewStyle().Foreground(theme.Muted),
		success: r.NewStyle().Foreground(theme.Success),
		warning: r.NewStyle().Foreground(theme.Warning),
		failure: r.NewStyle().Foreground(theme.Error),
	}
}

// PrintSummary writes the corpus counts, rate, top issues and
// recommendations of a report.
func (p *Printer) PrintSummary(report *seolint.Report) {
	s := report.Summary
	if s == nil {
		s = seolint.Summarize(report.Details)
	}

	fmt.Fprintln(p.w, p.title.Render("SEO Compliance Report"))
	fmt.Fprintln(p.w, p.label.Render("Articles:")+fmt.Sprint(s.TotalArticles))
	fmt.Fprintln(p.w, p.label.Render("Compliant:")+fmt.Sprint(s.CompliantArticles))
	fmt.Fprintln(p.w, p.label.Render("Rate:")+p.rateStyle(s.ComplianceRate).Render(fmt.Sprintf("%.2f%%", s.ComplianceRate)))

	if len(s.TopIssues) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, p.heading.Render("Top issues"))
		for _, ic := range s.TopIssues {
			fmt.Fprintf(p.w, "  %s  %s\n", p.muted.Render(fmt.Sprintf("%3d", ic.Count)), ic.Issue)
		}
	}

	if len(s.Recommendations) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, p.heading.Render("Recommendations"))
		for _, rec := range s.Recommendations {
			fmt.Fprintf(p.w, "  - %s\n", rec)
		}
	}
}

// PrintComparison writes the change in compliance rate relative to an
// earlier run of the same corpus.
func (p *Printer) PrintComparison(prev *seolint.Run, report *seolint.Report) {
	if prev == nil || report.Summary == nil {
		return
	}

	delta := report.Summary.ComplianceRate - prev.ComplianceRate
	style := p.muted
	switch {
	case delta > 0:
		style = p.success
	case delta < 0:
		style = p.failure
	}

	fmt.Fprintf(p.w, "%s%.2f%% on %s (%s)\n",
		p.label.Render("Previous:"),
		prev.ComplianceRate,
		prev.CreatedAt.Local().Format("2006-01-02 15:04"),
		style.Render(fmt.Sprintf("%+.2f", delta)))
}

// PrintFiles lists the report files written by a run.
func (p *Printer) PrintFiles(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.heading.Render("Reports"))
	for _, path := range paths {
		fmt.Fprintf(p.w, "  %s\n", path)
	}
}

// PrintRuns writes one line per recorded run.
func (p *Printer) PrintRuns(runs []*seolint.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(p.w, p.muted.Render("No runs recorded."))
		return
	}
	for _, r := range runs {
		fmt.Fprintf(p.w, "%s  %s  %s  %s  %s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			p.rateStyle(r.ComplianceRate).Render(fmt.Sprintf("%6.2f%%", r.ComplianceRate)),
			p.muted.Render(fmt.Sprintf("%d/%d", r.CompliantArticles, r.TotalArticles)),
			r.Root)
	}
}

// PrintRun writes a recorded run with its per-document outcomes.
func (p *Printer) PrintRun(run *seolint.Run) {
	fmt.Fprintln(p.w, p.title.Render("Run "+run.ID))
	fmt.Fprintln(p.w, p.label.Render("Root:")+run.Root)
	fmt.Fprintln(p.w, p.label.Render("Created:")+run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(p.w, p.label.Render("Rate:")+p.rateStyle(run.ComplianceRate).Render(fmt.Sprintf("%.2f%%", run.ComplianceRate)))
	fmt.Fprintln(p.w)

	width := 0
	for _, r := range run.Results {
		width = max(width, len(r.Slug))
	}
	for _, r := range run.Results {
		status := p.success.Render("ok  ")
		if !r.Compliant {
			status = p.failure.Render("fail")
		}
		fmt.Fprintf(p.w, "  %s  %s%s  %s\n",
			status, r.Slug, strings.Repeat(" ", width-len(r.Slug)),
			p.muted.Render(fmt.Sprintf("%d errors, %d warnings", r.ErrorCount, r.WarningCount)))
	}
}

func (p *Printer) rateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= seolint.ComplianceRateTarget:
		return p.success
	case rate >= seolint.ComplianceRateTarget/2:
		return p.warning
	default:
		return p.failure
	}
}
