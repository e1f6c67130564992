package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verse-mate/versemate-tui/internal/api"
	"github.com/verse-mate/versemate-tui/internal/config"
	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/storage"
	"github.com/verse-mate/versemate-tui/internal/ui"
	"github.com/verse-mate/versemate-tui/internal/ui/styles"
)

func main() {
	serverURL := flag.String("url", "", "Server URL (e.g., http://myserver:8080)")
	flag.StringVar(serverURL, "s", "", "Server URL (shorthand)")
	showHelp := flag.Bool("help", false, "Show help message")
	flag.BoolVar(showHelp, "h", false, "Show help (shorthand)")
	debug := flag.Bool("debug", false, "Write a debug log next to the config file")
	syncOnly := flag.Bool("sync", false, "Upload pending annotations and exit")

	flag.Parse()

	if *showHelp {
		printUsage()
		os.Exit(0)
	}

	cfgPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *serverURL != "" {
		cfg.ServerURL = *serverURL
		if err := config.Save(cfgPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save server URL to config: %v\n", err)
		}
	}

	var logger logging.Logger = logging.Nop{}
	if *debug {
		fileLogger, err := logging.NewFileLogger(filepath.Join(filepath.Dir(cfgPath), "debug.log"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	local, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer local.Close()

	client := api.NewClient(cfg.ServerURL)

	if *syncOnly {
		if err := runSync(local, client, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Drain the annotation queue in the background; failures keep the
	// queue intact for the next run.
	go func() {
		syncer := storage.NewSyncer(local, client, logger)
		if n, err := syncer.ProcessQueue(); err != nil {
			logger.Debugf("startup sync failed after %d ops: %v", n, err)
		}
	}()

	styles.ApplyTheme(cfg.Theme)

	app := ui.NewApp(&cfg, client, local, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("versemate - Terminal Bible and topic reader")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  versemate              Start the reader")
	fmt.Println("  versemate -sync        Upload pending annotations and exit")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -s, --url <url>   Set server URL (saved to config)")
	fmt.Println("  -sync             Upload pending bookmarks, highlights and notes")
	fmt.Println("  -debug            Write a debug log next to the config file")
	fmt.Println("  -h, --help        Show this help message")
	fmt.Println()
	fmt.Println("Config: ~/.config/versemate/config.toml")
}

func runSync(local *storage.Store, client *api.Client, logger logging.Logger) error {
	syncer := storage.NewSyncer(local, client, logger)
	n, err := syncer.ProcessQueue()
	if err != nil {
		return fmt.Errorf("synced %d item(s) before failing: %w", n, err)
	}
	fmt.Printf("Synced %d item(s).\n", n)
	return nil
}
