// Package server parses server command flags and runs the game API service.
package server

import (
	"flag"
	"fmt"

	"github.com/louisbranch/yearline/internal/platform/config"
)

// Config holds server command configuration.
type Config struct {
	Port   int    `env:"YEARLINE_PORT" envDefault:"8080"`
	Addr   string `env:"YEARLINE_ADDR"`
	DBPath string `env:"YEARLINE_DB_PATH" envDefault:"yearline.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the catalog database")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// ListenAddr resolves the listen address, preferring an explicit Addr.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}
