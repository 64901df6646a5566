package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/fsnotify"
	seoslog "github.com/fwojciec/seolint/slog"
	"github.com/fwojciec/seolint/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService seolint.RunService
	Watcher    seolint.Watcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seolint"),
		kong.Description("Score an article corpus against SEO metadata and content rules."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seolint --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if needsHistory(cmd, cli) {
		if m.RunService == nil {
			db, err := sqlite.OpenFile(m.DBPath)
			if err != nil {
				fmt.Fprintf(stderr, "Hint: Set SEOLINT_DB or pass --no-history\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			m.DB = db
			defer m.Close()
			m.RunService = sqlite.NewRunService(db)
		}
		deps.Runs = m.RunService
		if deps.Logger != nil {
			deps.Runs = seoslog.NewLoggingRunService(deps.Runs, deps.Logger)
		}
	}

	deps.NewWatcher = func(ignore ...string) seolint.Watcher {
		if m.Watcher != nil {
			return m.Watcher
		}
		return fsnotify.NewWatcher(ignore...)
	}

	return kongCtx.Run(deps)
}

func needsHistory(cmd string, cli *CLI) bool {
	switch cmd {
	case "history":
		return true
	case "run":
		return !cli.Run.NoHistory
	case "watch":
		return !cli.Watch.NoHistory
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("SEOLINT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seolint.db"
	}
	return filepath.Join(home, ".seolint", "seolint.db")
}
