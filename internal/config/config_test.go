package config

import "testing"

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("expected default addr :3000, got %q", cfg.Addr)
	}
	if cfg.Driver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %q", cfg.Driver)
	}
	if cfg.Mode != ModeDevelopment {
		t.Errorf("expected development mode, got %q", cfg.Mode)
	}
	if cfg.Production() {
		t.Error("expected Production() to be false by default")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-addr", ":9000",
		"-driver", "postgres",
		"-dsn", "postgres://localhost/shop",
		"-mode", "production",
		"-base-url", "https://shop.example.com",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Driver != "postgres" || cfg.DSN != "postgres://localhost/shop" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.Production() {
		t.Error("expected production mode")
	}
}

func TestParseEnvFallback(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "shop.sqlite3")
	t.Setenv("MODE", "development")

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Addr != ":8081" {
		t.Errorf("expected :8081 from PORT, got %q", cfg.Addr)
	}
	if cfg.DSN != "shop.sqlite3" {
		t.Errorf("expected DSN from DATABASE_URL, got %q", cfg.DSN)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	if _, err := Parse([]string{"-driver", "mysql"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
	if _, err := Parse([]string{"-mode", "staging"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := Parse([]string{"-driver", "postgres"}); err == nil {
		t.Error("expected error for postgres without DSN")
	}
	if _, err := Parse([]string{"-mode", "production"}); err == nil {
		t.Error("expected error for production without base URL")
	}
	if _, err := Parse([]string{"extra"}); err == nil {
		t.Error("expected error for positional argument")
	}
}
