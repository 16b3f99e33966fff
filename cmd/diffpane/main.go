// Command diffpane is a standalone pager for unified diffs. It reads a
// diff from stdin, a file, or a git working tree, and opens the
// interactive diff pane: scroll, search (/), hunk jumps ([ ]), and
// vim-style visual selection (V) with clipboard yank (y).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/diffpane/internal/app"
	"github.com/marcus/diffpane/internal/config"
	"github.com/marcus/diffpane/internal/render"
	"github.com/marcus/diffpane/internal/source"
	"github.com/marcus/diffpane/internal/version"
)

var (
	filePath   = flag.String("file", "", "read the diff from a file instead of stdin")
	gitDir     = flag.String("git", "", "read the diff from a git working tree")
	watchFlag  = flag.Bool("watch", false, "reload when the diff file changes (requires -file)")
	configPath = flag.String("config", "", "path to the config file (default ~/.config/diffpane/config.json)")
	initConfig = flag.Bool("init-config", false, "write the default config file and exit")
	debugFlag  = flag.Bool("debug", false, "enable debug logging")
	verFlag    = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *verFlag {
		fmt.Printf("diffpane version %s\n", version.String())
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if *initConfig {
		if err := config.Save(config.Default(), *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		path := *configPath
		if path == "" {
			path = config.ConfigPath()
		}
		fmt.Printf("Wrote default config to %s\n", path)
		os.Exit(0)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.Default()
	}

	title, text, err := loadDiff()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load diff: %v\n", err)
		os.Exit(1)
	}

	opts := []app.Option{
		app.WithRenderOptions(render.Options{
			SyntaxHighlight: cfg.UI.SyntaxHighlight,
			LineNumbers:     cfg.UI.ShowLineNumbers,
			TabWidth:        cfg.UI.TabWidth,
		}),
	}

	if (*watchFlag || cfg.Watch.Enabled) && *filePath != "" {
		events, err := source.Watch(*filePath, cfg.Watch.Debounce)
		if err != nil {
			logger.Warn("watch disabled", "err", err)
		} else {
			path := *filePath
			opts = append(opts, app.WithReload(events, func() (string, error) {
				return source.ReadFile(path)
			}))
			logger.Debug("watching diff file", "path", path)
		}
	} else if *watchFlag && *filePath == "" {
		fmt.Fprintln(os.Stderr, "-watch requires -file")
		os.Exit(1)
	}

	model := app.New(title, text, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// loadDiff picks the diff source from the flags: -git, then -file, then
// stdin.
func loadDiff() (title, text string, err error) {
	switch {
	case *gitDir != "":
		workdir, err := filepath.Abs(*gitDir)
		if err != nil {
			return "", "", err
		}
		text, err := source.GitDiff(workdir)
		return filepath.Base(workdir), text, err
	case *filePath != "":
		text, err := source.ReadFile(*filePath)
		return filepath.Base(*filePath), text, err
	default:
		text, err := source.ReadAll(os.Stdin)
		return "stdin", text, err
	}
}
