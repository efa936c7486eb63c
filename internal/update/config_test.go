package update

import (
	"testing"

	"github.com/toolstack/addressit/internal/config"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.ExportDir != "." {
		t.Fatalf("unexpected export dir default: %+v", cfg)
	}
	if cfg.ReportWidth != 96 || cfg.ReportHeight != 24 || cfg.NotificationLimit != 40 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFrom(t *testing.T) {
	cfg := RuntimeConfigFrom(DefaultRuntimeConfig(), config.Config{
		ExportDir: "exports",
		UI:        config.UIConfig{ReportWidth: 120},
	})
	if cfg.ExportDir != "exports" || cfg.ReportWidth != 120 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.ReportHeight != 24 {
		t.Fatalf("unset values should keep defaults: %+v", cfg)
	}
}
