package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aluiziolira/go-product-slider/catalog"
	"github.com/aluiziolira/go-product-slider/config"
	"github.com/aluiziolira/go-product-slider/models"
	"github.com/aluiziolira/go-product-slider/slider"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	defaultCfg := config.DefaultConfig()
	baseURLDefault := defaultCfg.BaseURL
	if value, ok := config.EnvString("SLIDER_BASE_URL"); ok {
		baseURLDefault = value
	}
	limitDefault := defaultCfg.Limit
	if value, ok, err := config.EnvInt("SLIDER_LIMIT"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid SLIDER_LIMIT: %v\n", err)
		os.Exit(1)
	} else if ok {
		limitDefault = value
	}
	timeoutDefault := defaultCfg.Timeout
	if value, ok, err := config.EnvDuration("SLIDER_TIMEOUT"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid SLIDER_TIMEOUT: %v\n", err)
		os.Exit(1)
	} else if ok {
		timeoutDefault = value
	}
	metricsDefault := defaultCfg.MetricsAddr
	if value, ok := config.EnvString("SLIDER_METRICS_ADDR"); ok {
		metricsDefault = value
	}
	logFileDefault := defaultCfg.LogFile
	if value, ok := config.EnvString("SLIDER_LOG_FILE"); ok {
		logFileDefault = value
	}

	baseURL := flag.String("base-url", baseURLDefault, "Catalog endpoint")
	limit := flag.Int("limit", limitDefault, "Number of products to request")
	timeout := flag.Duration("timeout", timeoutDefault, "Catalog request timeout; a request that hangs longer shows an error instead of loading forever")
	userAgent := flag.String("user-agent", defaultCfg.UserAgent, "User-Agent header for the catalog request")
	metricsAddr := flag.String("metrics-addr", metricsDefault, "Prometheus metrics listen address (e.g. :9090)")
	logFile := flag.String("log-file", logFileDefault, "Write logs to this file (logs are discarded when empty)")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	noMouse := flag.Bool("no-mouse", false, "Disable pointer input (pointer input is only available on the alternate screen)")
	inline := flag.Bool("inline", false, "Render inline instead of using the alternate screen")

	flag.Parse()

	cfg := defaultCfg
	cfg.BaseURL = *baseURL
	cfg.Limit = *limit
	cfg.Timeout = *timeout
	cfg.UserAgent = *userAgent
	cfg.MetricsAddr = *metricsAddr
	cfg.LogFile = *logFile
	cfg.Verbose = *verbose
	cfg.Mouse = !*noMouse
	cfg.AltScreen = !*inline

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run returns the process exit code once its deferred cleanup has run.
func run(cfg *config.Config) int {
	logger, closeLog, err := newLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	client, err := catalog.NewClient(cfg)
	if err != nil {
		slog.Error("initialising catalog client", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "catalog client: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(client.Metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	slog.Info("starting product slider",
		slog.String("endpoint", client.Endpoint()),
		slog.Int("limit", cfg.Limit),
	)

	model := slider.New(client, slider.Options{
		Context: ctx,
		Metrics: client.Metrics,
		OnAddToCart: func(p models.Product) {
			slog.Info("call-to-action activated",
				slog.Int("id", p.ID),
				slog.String("title", p.Title),
				slog.String("price", p.Price.StringFixed(2)),
			)
		},
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.PointerInput() {
		opts = append(opts, tea.WithMouseCellMotion())
	} else if cfg.Mouse {
		slog.Debug("pointer input needs the alternate screen; using keyboard only")
	}

	_, runErr := tea.NewProgram(model, opts...).Run()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		cancel()
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		slog.Error("product slider failed", slog.Any("error", runErr))
		fmt.Fprintf(os.Stderr, "product slider: %v\n", runErr)
		return 1
	}
	return 0
}

// newLogger writes to path when set. The terminal belongs to the widget, so
// without a log file everything is discarded.
func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }, nil
}
