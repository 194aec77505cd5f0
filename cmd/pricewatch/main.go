package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"pricewatch/internal/backend"
	"pricewatch/internal/config"
	"pricewatch/internal/eventbus"
	"pricewatch/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a pricewatch config file")
	flag.Parse()

	// Set up logging; the TUI owns stdout so diagnostics go to a file
	logFile, err := os.OpenFile("pricewatch.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// A .env next to the binary can override the backend origin
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment overrides from .env")
	}

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}
	config.ApplyEnv(cfg)
	log.Printf("Using backend %s, target site %s", cfg.BackendURL, cfg.TargetURL)

	// Create event bus
	bus := eventbus.New()

	// Backend service subscribes to request events automatically
	client := backend.NewClient(cfg.BackendURL, cfg.TargetURL)
	_ = backend.NewService(bus, client)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventTermsLoaded, forward)
	bus.Subscribe(eventbus.EventHistoryLoaded, forward)
	bus.Subscribe(eventbus.EventScrapeStarted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}
