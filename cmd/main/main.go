package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/CTAG07/confluxer/pkg/confluxer"
)

const configPath = "./config.json"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// lockedRand serializes access to a seeded *rand.Rand so it can be shared
// between API handlers.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// newRand returns a source for the configured seed. A zero seed selects the
// library's concurrency-safe default.
func newRand(seed uint64) confluxer.Rand {
	if seed == 0 {
		return confluxer.DefaultRand()
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

func main() {
	baseLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(os.Stdout); err != nil {
		baseLogger.Error("An error occurred, shutting down.", "error", err)
		os.Exit(1)
	}
}

// run loads the config, trains a Confluxer and then either prints the demo
// output to out or serves the API until a signal arrives.
func run(out io.Writer) error {
	config, warnings, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout carries only generated names.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
	for _, warning := range warnings {
		logger.Warn("Configuration warning", "path", configPath, "error", warning)
	}
	logger.Debug("Starting confluxer",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	rng := newRand(config.Seed)

	ctx := context.Background()
	c, err := buildConfluxer(ctx, config, rng, logger)
	if err != nil {
		return err
	}

	if config.ApiAddr == "" {
		return runDemo(out, c, config, rng)
	}
	return serve(config, c, rng, logger)
}

// buildConfluxer trains a Confluxer from every configured corpus.
func buildConfluxer(ctx context.Context, config *Config, rng confluxer.Rand, logger *slog.Logger) (*confluxer.Confluxer, error) {
	sources := make([]confluxer.Source, 0, len(config.CorpusFiles)+1)
	for _, path := range config.CorpusFiles {
		sources = append(sources, confluxer.FileSource(path))
	}

	if config.CorpusDatabase != "" {
		db, err := openCorpusDB(config.CorpusDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus database: %w", err)
		}
		// Training finishes inside NewFromSources, so the database is not needed afterwards.
		defer func(db *sql.DB) {
			_ = db.Close()
		}(db)
		sources = append(sources, confluxer.SQLSource(db, config.CorpusQuery))
	}

	c, err := confluxer.NewFromSources(ctx, sources,
		confluxer.WithRand(rng),
		confluxer.WithLanguage(config.LanguageTag()),
		confluxer.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to train confluxer: %w", err)
	}
	return c, nil
}

// runDemo prints config.Count generated strings, one per line, with lengths
// drawn uniformly from [MinLength, MaxLength]. An absent result prints an empty line.
func runDemo(out io.Writer, c *confluxer.Confluxer, config *Config, rng confluxer.Rand) error {
	for i := 0; i < config.Count; i++ {
		length := config.MinLength + rng.IntN(config.MaxLength-config.MinLength+1)
		name, _, err := c.Next(length)
		if err != nil {
			return fmt.Errorf("failed to generate: %w", err)
		}
		if _, err = fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

// serve hosts the generation API until SIGINT or SIGTERM.
func serve(config *Config, c *confluxer.Confluxer, rng confluxer.Rand, logger *slog.Logger) error {
	mux := http.NewServeMux()
	NewGenerateAPI(c, rng, logger).RegisterRoutes(mux)

	apiHttpServer := &http.Server{Addr: config.ApiAddr, Handler: mux}

	osSignalChan := make(chan os.Signal, 1)
	signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignalChan)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting api server", "address", apiHttpServer.Addr)
		if err := apiHttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-osSignalChan:
		logger.Info("OS signal received, initiating shutdown.")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("api server failed: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiHttpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("api server shutdown failed: %w", err)
	}
	logger.Info("Confluxer has shut down.")
	return nil
}
