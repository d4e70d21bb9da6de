package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/omdb"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/mmcdole/popcorn/internal/tui"
	"github.com/mmcdole/popcorn/internal/tui/components"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var (
		showVersion bool
		configPath  string
		ephemeral   bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&ephemeral, "ephemeral", false, "keep watched list and theme in memory only")
	flag.Parse()

	if showVersion {
		fmt.Printf("popcorn %s\n", Version)
		return
	}

	query := strings.Join(flag.Args(), " ")
	if err := run(configPath, ephemeral, query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, ephemeral bool, query string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closeLog()
	}
	slog.SetDefault(logger)

	logger.Info("starting popcorn", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(cfg, configPath, logger); err != nil {
			return err
		}
	}

	// Open storage
	storeCfg := cfg.StoreConfig()
	if ephemeral {
		storeCfg.Driver = store.DriverMemory
	}
	kv, err := store.Open(storeCfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer kv.Close()
	logger.Info("storage opened", "driver", storeCfg.Driver)

	// Create catalog client
	client := omdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey,
		omdb.WithRateLimit(cfg.Catalog.RatePerSecond),
		omdb.WithLogger(logger),
	)

	// Create session
	session, err := service.NewSession(context.Background(), client, kv, service.SessionOptions{
		RankResults: cfg.UI.RankResults,
		DefaultDark: lipgloss.HasDarkBackground(),
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Shutdown()

	// Create TUI model
	model := tui.NewModel(session, logger, query)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow asks for the OMDb API key when none is configured
func runSetupFlow(cfg *adapter.Config, configPath string, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to usePopcorn!")
	fmt.Println()
	fmt.Println("An OMDb API key is required (get one at https://www.omdbapi.com/apikey.aspx).")
	fmt.Println()

	// Loop until we get a working key
	for {
		apiKey, err := readAPIKey()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		fmt.Println()
		if err := checkKeyWithSpinner(cfg.Catalog.BaseURL, apiKey, logger); err != nil {
			fmt.Printf("\n✗ Could not verify API key: %v\n", err)
			fmt.Println("Please check the key and try again.")
			fmt.Println()
			continue
		}

		cfg.Catalog.APIKey = apiKey
		break
	}

	if err := adapter.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	return nil
}

// readAPIKey reads the key without echo when stdin is a terminal
func readAPIKey() (string, error) {
	fmt.Print("Enter your OMDb API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// checkKeyWithSpinner issues a probe search with a visual spinner
func checkKeyWithSpinner(baseURL, apiKey string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := omdb.NewClient(baseURL, apiKey, omdb.WithLogger(logger))

	// Start probe in background
	resultCh := make(chan error, 1)
	go func() {
		_, err := client.Search(ctx, "popcorn")
		resultCh <- err
	}()

	// Spinner animation
	frame := 0
	fmt.Printf("\r%s Checking API key...", components.Spinner(frame))

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			// Clear spinner line
			fmt.Print(clearSpinnerLine)

			// A catalog miss still proves the key works
			if err != nil && !errors.Is(err, domain.ErrMovieNotFound) {
				return err
			}
			fmt.Println("✓ API key accepted")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking API key...", components.Spinner(frame))

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("check timed out")
		}
	}
}
