// Package main implements the entry point for the FeedStreams simulator.
// FeedStreams loads declarative feed definitions, synthesizes realistic
// events from them, and publishes the resulting streams to a broker on
// per-stream timers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/solacecommunity/feedstreams/config"
	"github.com/solacecommunity/feedstreams/eventlog"
	"github.com/solacecommunity/feedstreams/feed"
	"github.com/solacecommunity/feedstreams/gateway/ws"
	"github.com/solacecommunity/feedstreams/generator"
	"github.com/solacecommunity/feedstreams/metric"
	"github.com/solacecommunity/feedstreams/natsclient"
	"github.com/solacecommunity/feedstreams/pkg/retry"
	"github.com/solacecommunity/feedstreams/scheduler"
	"github.com/solacecommunity/feedstreams/synthesizer"
	"github.com/solacecommunity/feedstreams/transport"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "feedstreams"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	cfg, err := config.NewLoader().Load(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cliCfg.LogLevel != "" {
		cfg.LogLevel = cliCfg.LogLevel
	}
	if cliCfg.StartAll {
		cfg.Feeds.StartAll = true
	}

	logger := setupLogger(cfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting FeedStreams",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	feeds, err := loadFeeds(cfg.Feeds.Dir)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration and feed files are valid",
			"feeds", len(feeds),
			"rules", countRules(feeds))
		return nil
	}

	return runSimulator(cfg, cliCfg, feeds, logger)
}

// loadFeeds loads and validates every feed under the configured directory.
func loadFeeds(dir string) ([]feed.Feed, error) {
	feeds, err := feed.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load feeds from %s: %w", dir, err)
	}

	for _, f := range feeds {
		slog.Info("feed loaded",
			"feed", f.Name,
			"rules", len(f.Rules))
	}
	return feeds, nil
}

func countRules(feeds []feed.Feed) int {
	total := 0
	for _, f := range feeds {
		total += len(f.Rules)
	}
	return total
}

// runSimulator wires the pipeline together and runs until a signal.
func runSimulator(cfg *config.Config, cliCfg *CLIConfig, feeds []feed.Feed, logger *slog.Logger) error {
	ctx := context.Background()

	metricsRegistry := metric.NewMetricsRegistry()
	coreMetrics := metricsRegistry.CoreMetrics()

	natsClient, err := connectNATS(ctx, cfg, metricsRegistry)
	if err != nil {
		return err
	}
	defer func() {
		if err := natsClient.Close(ctx); err != nil {
			slog.Warn("NATS close error", "error", err)
		}
	}()

	registry := generator.NewRegistry(
		generator.WithFallbackHook(coreMetrics.RecordGeneratorFallback),
	)
	synth := synthesizer.New(registry, synthesizer.WithLogger(logger))

	log := eventlog.New(cfg.EventLog.Capacity,
		eventlog.WithLogger(logger),
		eventlog.WithMetrics(metricsRegistry),
	)

	tr := transport.NewNATS(natsClient, transport.WithLogger(logger))

	sched := scheduler.New(allRules(feeds), synth, tr, log,
		scheduler.WithLogger(logger),
		scheduler.WithMetrics(metricsRegistry),
	)
	defer sched.Shutdown()

	var gatewayServer *ws.Server
	if cfg.Gateway.Enabled {
		gwCfg := ws.DefaultConfig()
		gwCfg.Addr = cfg.Gateway.Addr
		gwCfg.Path = cfg.Gateway.Path
		if cfg.Gateway.PingInterval > 0 {
			gwCfg.PingInterval = cfg.Gateway.PingInterval
		}
		gatewayServer = ws.NewServer(gwCfg, log, sched, feeds,
			ws.WithLogger(logger),
			ws.WithMetrics(metricsRegistry),
		)
		if err := gatewayServer.Start(ctx); err != nil {
			return fmt.Errorf("start gateway: %w", err)
		}
		defer func() {
			if err := gatewayServer.Stop(cliCfg.ShutdownTimeout); err != nil {
				slog.Warn("gateway stop error", "error", err)
			}
		}()
	}

	var metricsServer *metric.Server
	if cfg.Metrics.Enabled {
		metricsServer = metric.NewServer(portFromAddr(cfg.Metrics.Addr), cfg.Metrics.Path, metricsRegistry)
		go func() {
			if err := metricsServer.Start(); err != nil {
				slog.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			if err := metricsServer.Stop(); err != nil {
				slog.Warn("metrics server stop error", "error", err)
			}
		}()
		slog.Info("metrics server started", "address", metricsServer.Address())
	}

	if cfg.Feeds.StartAll {
		sched.StartAll()
	}

	slog.Info("FeedStreams running",
		"streams", len(sched.Instances()),
		"active", sched.ActiveCount())

	return waitForShutdown(cliCfg.ShutdownTimeout, sched)
}

// connectNATS builds the client and connects with retry.
func connectNATS(ctx context.Context, cfg *config.Config, registry *metric.MetricsRegistry) (*natsclient.Client, error) {
	opts := []natsclient.ClientOption{
		natsclient.WithMaxReconnects(cfg.NATS.MaxReconnects),
		natsclient.WithMetrics(registry),
	}
	if cfg.NATS.ReconnectWait > 0 {
		opts = append(opts, natsclient.WithReconnectWait(cfg.NATS.ReconnectWait))
	}
	if cfg.NATS.Timeout > 0 {
		opts = append(opts, natsclient.WithTimeout(cfg.NATS.Timeout))
	}
	if cfg.NATS.Username != "" {
		opts = append(opts, natsclient.WithCredentials(cfg.NATS.Username, cfg.NATS.Password))
	}
	if cfg.NATS.Token != "" {
		opts = append(opts, natsclient.WithToken(cfg.NATS.Token))
	}

	client, err := natsclient.NewClient(cfg.NATS.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	slog.Info("Connecting to NATS", "url", cfg.NATS.URL)
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = 5
	retryCfg.MaxDelay = 10 * time.Second
	err = retry.Do(ctx, retryCfg, func() error {
		if err := client.Connect(ctx); err != nil {
			return err
		}
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return client.WaitForConnection(connCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return client, nil
}

func allRules(feeds []feed.Feed) []feed.Rule {
	var rules []feed.Rule
	for _, f := range feeds {
		rules = append(rules, f.Rules...)
	}
	return rules
}

// portFromAddr extracts the port from a ":9090"-style listen address.
func portFromAddr(addr string) int {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0
	}
	return port
}

// waitForShutdown blocks until SIGINT or SIGTERM, then stops the streams.
func waitForShutdown(timeout time.Duration, sched *scheduler.Scheduler) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	slog.Info("Shutting down", "signal", sig.String(), "timeout", timeout)

	done := make(chan struct{})
	go func() {
		sched.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Shutdown complete")
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
