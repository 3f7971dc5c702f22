package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Addr != "" {
		t.Fatalf("expected empty addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "yearline.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.ListenAddr())
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9001", "-addr", "127.0.0.1:9999", "-db", "/tmp/t.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.ListenAddr() != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.ListenAddr())
	}
	if cfg.DBPath != "/tmp/t.db" {
		t.Fatalf("expected db override, got %q", cfg.DBPath)
	}
}
