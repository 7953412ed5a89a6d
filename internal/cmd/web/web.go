// Package web boots the browser-facing civic engagement service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/opencivica/civica/internal/platform/config"
	"github.com/opencivica/civica/internal/services/web"
)

// Config holds the web command configuration. Environment values seed the
// defaults; flags override them.
type Config struct {
	HTTPAddr      string `env:"CIVICA_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL    string `env:"CIVICA_WEB_API_BASE_URL" envDefault:"http://localhost:8090"`
	SessionSecret string `env:"CIVICA_WEB_SESSION_SECRET"`
	CacheDBPath   string `env:"CIVICA_WEB_CACHE_DB_PATH"`
}

// ParseConfig parses environment values and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "civic engagement API base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "session token signing secret")
	fs.StringVar(&cfg.CacheDBPath, "cache-db", cfg.CacheDBPath, "sqlite cache snapshot path (empty disables persistence)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:        cfg.HTTPAddr,
		APIBaseURL:      cfg.APIBaseURL,
		SessionSecret:   cfg.SessionSecret,
		CacheDBPath:     cfg.CacheDBPath,
		ShutdownTimeout: 10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
