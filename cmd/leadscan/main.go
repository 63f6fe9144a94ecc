package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"github.com/konverta/leadscan"
	"github.com/konverta/leadscan/enrich"
	"github.com/konverta/leadscan/gemini"
	"github.com/konverta/leadscan/goquery"
	"github.com/konverta/leadscan/htmltomarkdown"
	leadhttp "github.com/konverta/leadscan/http"
	"github.com/konverta/leadscan/industry"
	leadredis "github.com/konverta/leadscan/redis"
	"github.com/konverta/leadscan/scan"
	"github.com/konverta/leadscan/score"
	leadslog "github.com/konverta/leadscan/slog"
	"github.com/konverta/leadscan/sqlite"
	"github.com/konverta/leadscan/trafilatura"
)

// domainRPS is the per-domain request rate for site scans.
const domainRPS = 1.0

func main() {
	ctx := context.Background()

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

	// SQLite database used by the report store.
	DB *sqlite.DB

	// ReportService for end-to-end testing.
	ReportService leadscan.ReportService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leadscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEADSCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ReportService = sqlite.NewReportService(m.DB)
	deps.Reports = m.ReportService

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// The analyze and site commands need the full pipeline; report, list
	// and delete only touch the store.
	if cmd == "analyze" || cmd == "site" {
		deps.Queue = newTaskQueue()

		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			enricher := leadslog.NewLoggingEnricher(gemini.NewEnricher(client), logger)
			deps.Worker = enrich.NewWorker(deps.Queue, enricher, deps.Reports, logger)
		} else {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; reports will use template narratives")
			deps.Worker = enrich.NewWorker(deps.Queue, enrich.StaticEnricher{}, deps.Reports, logger)
		}

		deps.Scanner = &scan.Scanner{
			Fetcher:     leadslog.NewLoggingFetcher(leadhttp.NewFetcher(), logger),
			Extractor:   goquery.NewExtractor(),
			Classifier:  industry.NewClassifier(),
			Scorer:      score.NewEngine(),
			Reports:     deps.Reports,
			Tasks:       deps.Queue,
			Content:     trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Discoverer:  leadhttp.NewDiscoverer(nil),
			Limiter:     scan.NewDomainLimiter(domainRPS),
			Concurrency: cli.Site.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// newTaskQueue returns the Redis-backed queue when LEADSCAN_REDIS is set,
// otherwise an in-process channel queue.
func newTaskQueue() leadscan.TaskQueue {
	if addr := os.Getenv("LEADSCAN_REDIS"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		return leadredis.NewQueue(client, leadredis.DefaultKey)
	}
	return enrich.NewQueue(enrich.DefaultQueueSize)
}

func defaultDBPath() string {
	if path := os.Getenv("LEADSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leadscan.db"
	}
	dir := filepath.Join(home, ".leadscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leadscan.db")
}
