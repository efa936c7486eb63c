package update

import (
	"strings"

	"github.com/toolstack/addressit/internal/config"
)

type RuntimeConfig struct {
	ExportDir         string
	ReportWidth       int
	ReportHeight      int
	NotificationLimit int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ExportDir:         ".",
		ReportWidth:       96,
		ReportHeight:      24,
		NotificationLimit: 40,
	}
}

// RuntimeConfigFrom overlays the TUI settings found in cfg on base.
func RuntimeConfigFrom(base RuntimeConfig, cfg config.Config) RuntimeConfig {
	out := base
	if dir := strings.TrimSpace(cfg.ExportDir); dir != "" {
		out.ExportDir = dir
	}
	if cfg.UI.ReportWidth > 0 {
		out.ReportWidth = cfg.UI.ReportWidth
	}
	if cfg.UI.ReportHeight > 0 {
		out.ReportHeight = cfg.UI.ReportHeight
	}
	return out
}
