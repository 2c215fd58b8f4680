package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/azupdates/pkg/config"
	"github.com/umputun/azupdates/pkg/feed"
	"github.com/umputun/azupdates/pkg/mcp"
	"github.com/umputun/azupdates/pkg/metrics"
	"github.com/umputun/azupdates/pkg/tools"
	"github.com/umputun/azupdates/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"yaml config file, replaces feed, cache and server options"`

	FeedURL     string `long:"feed-url" env:"AZURE_RSS_URL" default:"https://www.microsoft.com/releasecommunications/api/v2/azure/rss" description:"azure updates rss feed"`
	FeedTimeout int    `long:"feed-timeout" env:"AZURE_RSS_TIMEOUT" default:"30" description:"feed request timeout, in seconds"`
	CacheTTL    int    `long:"cache-ttl" env:"AZURE_CACHE_TTL_MINUTES" default:"5" description:"cache ttl, in minutes"`

	Transport string `short:"t" long:"transport" env:"MCP_TRANSPORT" default:"stdio" choice:"stdio" choice:"http" description:"tool server transport"`
	Host      string `long:"host" env:"MCP_HOST" default:"0.0.0.0" description:"http transport host"`
	Port      int    `short:"p" long:"port" env:"MCP_PORT" default:"8000" description:"http transport port"`
	BaseURL   string `long:"base-url" env:"BASE_URL" description:"public url of the server, used in rss links"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

const instructions = "Tools to query recent Azure service updates: search and filter by keyword, category, " +
	"status and dates, summarize by status and category, list categories."

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	log.Printf("[INFO] starting azupdates version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires feed cache, tools and the selected transport and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("[DEBUG] config: feed %s, timeout %v, ttl %v, transport %s",
		cfg.Feed.URL, cfg.Feed.Timeout, cfg.Cache.TTL, cfg.Server.Transport)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	cache := feed.NewCache(feed.NewParser(cfg.Feed.Timeout, cfg.Feed.UserAgent), feed.CacheParams{
		URL:      cfg.Feed.URL,
		TTL:      cfg.Cache.TTL,
		Recorder: collector,
	})
	svc := tools.NewService(cache)
	mcpSrv, err := mcp.NewServer(NewToolsAdapter(svc), mcp.ServerInfo{Name: tools.ServiceName, Version: revision}, instructions)
	if err != nil {
		return fmt.Errorf("failed to make mcp server: %w", err)
	}

	if cfg.Server.Transport == config.TransportHTTP {
		srv := server.New(cfg, server.Deps{
			MCP:       mcpSrv.HTTPHandler(),
			Updates:   cache,
			Generator: feed.NewGenerator(publicURL(cfg.Server)),
			Metrics:   metrics.Handler(registry),
		}, revision, opts.Debug)
		return srv.Run(ctx)
	}

	return mcpSrv.ServeStdio(ctx, os.Stdin, os.Stdout)
}

// loadConfig reads yaml config if set, otherwise builds it from cli options
func loadConfig(opts Opts) (*config.Config, error) {
	if opts.Config != "" {
		return config.Load(opts.Config)
	}

	if opts.Port < 1 || opts.Port > 65535 {
		return nil, fmt.Errorf("port must be in 1..65535, got %d", opts.Port)
	}

	cfg := config.Default()
	cfg.Feed.URL = opts.FeedURL
	cfg.Feed.Timeout = time.Duration(opts.FeedTimeout) * time.Second
	cfg.Cache.TTL = time.Duration(opts.CacheTTL) * time.Minute
	cfg.Server.Transport = opts.Transport
	cfg.Server.Listen = net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	cfg.Server.BaseURL = opts.BaseURL
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// publicURL returns configured base url or one made from the listen address
func publicURL(srv config.ServerConfig) string {
	if srv.BaseURL != "" {
		return srv.BaseURL
	}
	host, port, err := net.SplitHostPort(srv.Listen)
	if err != nil {
		return "http://" + srv.Listen
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// SetupLog configures lgr and the std logger. Everything goes to stderr, stdout belongs to stdio transport.
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
