package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr     string
	AllowedOrigins []string
	Debug          bool

	Log LogConfig

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string // debug|info|warn|error
	Format string // json|console
	File   string // optional; rotating file sink when set
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		Debug: false,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			File:   "",
		},
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Parse builds the runtime configuration from flags, with environment
// fallbacks (RESEARCHHUB_*) for container deployments.
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("researchhub-api", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)

	var (
		listenAddr = fs.String("listen", envOr("RESEARCHHUB_LISTEN", cfg.ListenAddr), "HTTP listen address (host:port)")
		origins    = fs.String("cors.origins", envOr("RESEARCHHUB_CORS_ORIGINS", ""), "Comma-separated allowed CORS origins (overrides defaults)")
		debug      = fs.Bool("debug", envOrBool("RESEARCHHUB_DEBUG", cfg.Debug), "Run the router in debug mode")
		logLevel   = fs.String("log.level", envOr("RESEARCHHUB_LOG_LEVEL", cfg.Log.Level), "Log level: debug|info|warn|error")
		logFormat  = fs.String("log.format", envOr("RESEARCHHUB_LOG_FORMAT", cfg.Log.Format), "Log format: json|console")
		logFile    = fs.String("log.file", envOr("RESEARCHHUB_LOG_FILE", cfg.Log.File), "Log file path (rotated); empty logs to stdout")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = strings.TrimSpace(*listenAddr)
	cfg.Debug = *debug
	cfg.Log.Level = strings.TrimSpace(*logLevel)
	cfg.Log.Format = strings.TrimSpace(*logFormat)
	cfg.Log.File = strings.TrimSpace(*logFile)

	if o := strings.TrimSpace(*origins); o != "" {
		cfg.AllowedOrigins = splitCSV(o)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", cfg.ListenAddr, err)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envOrBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
