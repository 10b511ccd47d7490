package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikaw/roost/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override roost config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	debugLog := flag.String("debug", "", "write debug logs to this file (optional)")
	flag.Parse()

	if *debugLog != "" {
		// Stderr would corrupt the TUI, so debug logging goes to a file.
		f, err := tea.LogToFile(*debugLog, "roost")
		if err != nil {
			fmt.Fprintf(os.Stderr, "roost: open debug log: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		// Without a log file the standard logger would write over the TUI.
		log.SetOutput(io.Discard)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "roost: %v\n", err)
		return 1
	}
	return 0
}
