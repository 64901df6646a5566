package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/seolint"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger is set when verbose logging is enabled.
	Logger *slog.Logger

	// Runs is nil when history is disabled.
	Runs seolint.RunService

	// NewWatcher creates a watcher that ignores the given paths.
	NewWatcher func(ignore ...string) seolint.Watcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Run     RunCmd     `cmd:"" help:"Analyze a corpus and write compliance reports"`
	Watch   WatchCmd   `cmd:"" help:"Analyze a corpus and re-run on every change"`
	History HistoryCmd `cmd:"" help:"List, show or delete recorded runs"`
	Config  ConfigCmd  `cmd:"" help:"Print the effective configuration"`
}

// AnalyzeFlags are shared by the commands that run an analysis.
type AnalyzeFlags struct {
	Root        string `arg:"" type:"path" help:"Corpus root directory (one subdirectory per article)"`
	Output      string `arg:"" optional:"" type:"path" default:"reports" help:"Directory the reports are written to"`
	Config      string `short:"c" type:"path" help:"Configuration file (YAML or JSON)"`
	Concurrency int    `help:"Articles analyzed at once (overrides the configuration)"`
	JUnit       bool   `name:"junit" help:"Also write a JUnit XML report"`
	PDF         bool   `name:"pdf" help:"Also write a PDF report"`
	Metrics     bool   `help:"Also write a Prometheus textfile"`
	NoHistory   bool   `help:"Do not record the run in history"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	AnalyzeFlags `embed:""`

	MinRate float64 `help:"Fail when the compliance rate is below this percentage"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	AnalyzeFlags `embed:""`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Run ID to show"`
	Root   string `type:"path" help:"Only list runs of this corpus root"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to list"`
	Delete bool   `help:"Delete the run instead of showing it"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Config string `short:"c" type:"path" help:"Configuration file (YAML or JSON)"`
}
