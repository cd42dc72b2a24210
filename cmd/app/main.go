package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/notify"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			fmt.Printf("Config rejected: %v\n", err)
		} else {
			fmt.Printf("Alas, there's been an error: %v\n", err)
		}
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "countdown needs an interactive terminal.")
		os.Exit(1)
	}

	// 2. Route the standard logger away from the screen
	logFile, err := setupLogging(os.Getenv(config.DebugEnv), util.DataDir(config.AppName))
	util.MustSucceed("setup logging", err)
	defer util.CloseLogged("close debug log", logFile)

	// 3. Build the widget and start the program
	model := tui.NewTimerModel(tui.Options{
		Theme:           cfg.Theme,
		DefaultDuration: cfg.DefaultDuration,
		Notifier:        buildNotifier(cfg, os.Stderr),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to a file in dir when debug is set and
// discards it otherwise. The returned closer is nil when nothing was opened.
func setupLogging(debug, dir string) (io.Closer, error) {
	if strings.TrimSpace(debug) == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.DebugLogName), config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}

func buildNotifier(cfg *config.Config, bell io.Writer) notify.Notifier {
	n := notify.Multi{notify.Logger{}}
	if cfg.Bell {
		n = append(n, notify.Bell{W: bell})
	}
	return n
}
