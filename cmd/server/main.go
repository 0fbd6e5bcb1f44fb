package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_text_metrics/internal/config"
	"github.com/baditaflorin/go_text_metrics/pkg/similarity"
	"github.com/baditaflorin/go_text_metrics/pkg/statistics"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the server and blocks until it stops. Errors are returned after
// the logger has been flushed.
func run(args []string) error {
	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a TOML configuration file")
	port := flags.Int("port", 0, "HTTP server port (overrides config)")
	readTimeout := flags.Duration("read-timeout", 0, "HTTP read timeout (overrides config)")
	writeTimeout := flags.Duration("write-timeout", 0, "HTTP write timeout (overrides config)")
	maxRequestSize := flags.Int("max-request-size", 0, "Maximum request size in bytes (overrides config)")
	concurrency := flags.Int("concurrency", -1, "Maximum number of concurrent connections, 0 = fasthttp default (overrides config)")
	warmUp := flags.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flags.String("log-file", "", "Log file path (overrides config, empty = stdout)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, exists, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over the file.
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *readTimeout > 0 {
		cfg.Server.ReadTimeoutSeconds = wholeSeconds(*readTimeout)
	}
	if *writeTimeout > 0 {
		cfg.Server.WriteTimeoutSeconds = wholeSeconds(*writeTimeout)
	}
	if *maxRequestSize > 0 {
		cfg.Server.MaxRequestSize = *maxRequestSize
	}
	if *concurrency >= 0 {
		cfg.Server.Concurrency = *concurrency
	}
	if !*warmUp {
		cfg.Server.WarmUp = false
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Starting text metrics HTTP server",
		"config_file", *configPath,
		"config_loaded", exists,
		"port", cfg.Server.Port,
		"read_timeout", cfg.ReadTimeout(),
		"write_timeout", cfg.WriteTimeout(),
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
	)

	api, err := newAPI(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize calculators", "error", err)
		return err
	}

	server := &fasthttp.Server{
		Handler:               api.requestHandler,
		Name:                  "TextMetricsServer",
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigint)

	stopped := make(chan struct{})
	defer close(stopped)

	idleConnsClosed := make(chan struct{})
	go func() {
		select {
		case <-sigint:
		case <-stopped:
			return
		}

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		logger.Error("Server error", "error", err)
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
	return nil
}

// wholeSeconds converts a flag duration to the config's whole seconds,
// rounding sub-second remainders up.
func wholeSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

// newAPI builds the calculators described by cfg.
func newAPI(cfg *config.Config, logger l.Logger) (*API, error) {
	statOpts := []statistics.StatisticsOption{
		statistics.WithWordsPerMinute(cfg.Metrics.WordsPerMinute),
		statistics.WithLogger(logger),
	}
	simOpts := []similarity.SimilarityOption{
		similarity.WithThreshold(cfg.Metrics.SimilarityThreshold),
		similarity.WithPrecision(cfg.Metrics.Precision),
		similarity.WithLogger(logger),
	}
	if cfg.Metrics.FastNormalizer {
		simOpts = append(simOpts, similarity.WithFastNormalizer())
	}
	if cfg.Server.WarmUp {
		statOpts = append(statOpts, statistics.WithWarmUp(true))
		simOpts = append(simOpts, similarity.WithWarmUp(true))
	}

	stats, err := statistics.New(statOpts...)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	sim, err := similarity.New(simOpts...)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	logger.Info("Calculators initialized successfully",
		"warm_up", cfg.Server.WarmUp,
		"words_per_minute", stats.WordsPerMinute(),
		"similarity_threshold", sim.Threshold(),
		"cpus", runtime.NumCPU(),
	)

	return NewAPI(stats, sim, logger, cfg.RequestTimeout()), nil
}

// createLogger creates and configures a logger
func createLogger(cfg config.Logging) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
