package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdirTemp(t)

	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Fatalf("server port want 8080 got %s", cfg.Server.Port)
	}
	if cfg.Order.FreeShippingThreshold != "200" || cfg.Order.FlatShippingFee != "15" {
		t.Fatalf("unexpected shipping defaults: %+v", cfg.Order)
	}
	if cfg.Order.ConflictRetries != 1 {
		t.Fatalf("conflict retries want 1 got %d", cfg.Order.ConflictRetries)
	}
	if cfg.Catalog.RelatedLimit != 4 {
		t.Fatalf("related limit want 4 got %d", cfg.Catalog.RelatedLimit)
	}
	if cfg.Queue.Queues["critical"] != 5 {
		t.Fatalf("unexpected queue weights: %+v", cfg.Queue.Queues)
	}
}

func TestLoadReadsFileAndEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	content := []byte("server:\n  port: \"9090\"\norder:\n  flat_shipping_fee: \"12.50\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("ORDER_FREE_SHIPPING_THRESHOLD", "99")

	cfg := Load()
	if cfg.Server.Port != "9090" {
		t.Fatalf("server port want 9090 got %s", cfg.Server.Port)
	}
	if cfg.Order.FlatShippingFee != "12.50" {
		t.Fatalf("flat fee want 12.50 got %s", cfg.Order.FlatShippingFee)
	}
	if cfg.Order.FreeShippingThreshold != "99" {
		t.Fatalf("env override want 99 got %s", cfg.Order.FreeShippingThreshold)
	}
}
