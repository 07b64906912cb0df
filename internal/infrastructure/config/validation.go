package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	pagination "github.com/bnema/pagecore/internal/domain/printing"
)

// validateConfig collects every invalid value and reports them together.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateInput(config)...)
	validationErrors = append(validationErrors, validateRendering(config)...)
	validationErrors = append(validationErrors, validatePrinting(config)...)
	validationErrors = append(validationErrors, validateIPC(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a log level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateCache(config *Config) []string {
	if _, err := entity.ParseCacheModel(config.Cache.Model); err != nil {
		return []string{"cache.model: " + err.Error()}
	}
	return nil
}

func validateInput(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseContextMenuPolicy(config.Input.ContextMenuPolicy); err != nil {
		validationErrors = append(validationErrors, "input.context_menu_policy: "+err.Error())
	}
	if config.Input.MiddleClickThreshold < 0 {
		validationErrors = append(validationErrors, "input.middle_click_threshold must be non-negative")
	}
	if config.Input.WheelLines < 0 {
		validationErrors = append(validationErrors, "input.wheel_lines must be non-negative")
	}
	if config.Input.LineStep < 0 {
		validationErrors = append(validationErrors, "input.line_step must be non-negative")
	}
	return validationErrors
}

func validateRendering(config *Config) []string {
	var validationErrors []string
	if config.Rendering.TileSize <= 0 {
		validationErrors = append(validationErrors, "rendering.tile_size must be positive")
	}
	if _, err := port.ParseInterpolationQuality(config.Rendering.Interpolation); err != nil {
		validationErrors = append(validationErrors, "rendering.interpolation: "+err.Error())
	}
	return validationErrors
}

func validatePrinting(config *Config) []string {
	var validationErrors []string
	p := config.Printing
	if !slices.Contains(pagination.ValidPagesPerSheet, p.PagesPerSheet) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("printing.pages_per_sheet must be one of %v", pagination.ValidPagesPerSheet))
	}
	if p.PostScriptLevel != 2 && p.PostScriptLevel != 3 {
		validationErrors = append(validationErrors, "printing.postscript_level must be 2 or 3")
	}
	if p.PaperWidth <= 0 || p.PaperHeight <= 0 {
		validationErrors = append(validationErrors, "printing.paper_width and printing.paper_height must be positive")
	}
	if p.Margin < 0 || 2*p.Margin >= min(p.PaperWidth, p.PaperHeight) {
		validationErrors = append(validationErrors, "printing.margin must leave a printable area")
	}
	return validationErrors
}

func validateIPC(config *Config) []string {
	if config.IPC.HandshakeTimeout < 0 {
		return []string{"ipc.handshake_timeout must be non-negative"}
	}
	return nil
}
