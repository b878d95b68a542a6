package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"quote-scraper/pkg/config"
	"quote-scraper/pkg/crawler"
	applog "quote-scraper/pkg/log"
	"quote-scraper/pkg/utils"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "crawl":
		runCrawl(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "version":
		fmt.Printf("quote-scraper %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	printUsageTo(os.Stdout)
}

// printUsageTo writes usage information to the provided writer.
func printUsageTo(w io.Writer) {
	fmt.Fprintln(w, `quote-scraper - Quotes website crawler

Usage:
  quote-scraper <command> [options]

Commands:
  crawl     Crawl the quotes site and write CSV outputs
  validate  Validate configuration file
  version   Show version info

Run 'quote-scraper <command> -h' for command-specific help.`)
}

// loadConfig loads and parses the config file. An empty path yields the
// built-in defaults, so the tool works with no config at all.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// runCrawl handles the crawl subcommand
func runCrawl(args []string) {
	fs := flag.NewFlagSet("crawl", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to config file (built-in defaults when omitted)")
	outPath := fs.String("out", "", "Quotes CSV output path (overrides config)")
	summaryPath := fs.String("summary", "", "Write a Markdown crawl summary to this path")
	logLevel := fs.String("loglevel", "", "Log level (debug, info, warn, error, fatal)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quote-scraper crawl [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quote-scraper crawl\n")
		fmt.Fprintf(os.Stderr, "  quote-scraper crawl -config config.yaml -out data/quotes.csv\n")
		fmt.Fprintf(os.Stderr, "  quote-scraper crawl -summary crawl-summary.md -loglevel debug\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	executeCrawl(*configFile, *outPath, *summaryPath, *logLevel)
}

// executeCrawl contains the main crawl logic
func executeCrawl(configFile, outPath, summaryPath, logLevelStr string) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides beat config file values
	if outPath != "" {
		cfg.Output.QuotesPath = outPath
	}
	if summaryPath != "" {
		cfg.Output.SummaryPath = summaryPath
	}
	if logLevelStr != "" {
		cfg.Log.Level = logLevelStr
	}

	warnings, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := applog.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log setup error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range warnings {
		log.Warn(w)
	}
	log.Infof("Configuration loaded (base_url: %s, quotes: %s)", cfg.Site.BaseURL, cfg.Output.QuotesPath)

	// ===========================================================
	// == Setup Global Context & Signal Handling ==
	// ===========================================================
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warnf("Received signal: %v. Initiating graceful shutdown...", sig)
		cancel()

		select {
		case sig = <-sigChan:
			log.Warnf("Received second signal: %v. Forcing exit.", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			log.Warn("Graceful shutdown period exceeded after signal. Forcing exit.")
			os.Exit(1)
		}
	}()

	// ===========================================================
	// == Run Crawler ==
	// ===========================================================
	c, err := crawler.New(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize crawler: %v", err)
	}

	result, err := c.Run(ctx)

	exitCode := 0
	switch {
	case err == nil:
		log.Infof("Crawl completed successfully. Quotes: %s, Authors: %s", result.QuotesPath, result.AuthorsPath)
	case errors.Is(err, context.Canceled):
		log.Warn("Crawl cancelled gracefully.")
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("Crawl timed out.")
		exitCode = 1
	default:
		log.WithField("error_category", utils.CategorizeError(err)).Errorf("Crawl finished with error: %v", err)
		exitCode = 1
	}

	signal.Stop(sigChan)
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
	os.Exit(exitCode)
}

// runValidate handles the validate subcommand
func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configFile := fs.String("config", "config.yaml", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quote-scraper validate [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	os.Exit(doValidate(*configFile, os.Stdout, os.Stderr))
}

// doValidate performs validation and writes output to the provided writers.
// Returns exit code (0 = success, 1 = error).
func doValidate(configPath string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		fmt.Fprintf(stdout, "WARN: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Configuration valid.")
	return 0
}
