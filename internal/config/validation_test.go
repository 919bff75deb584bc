package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithDetails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{}`), 0o644))

	withDir := func(mutate func(*Config)) *Config {
		cfg := Default()
		cfg.Locales.Dir = dir
		if mutate != nil {
			mutate(cfg)
		}
		return cfg
	}

	fields := func(issues []ValidationIssue) []string {
		var out []string
		for _, issue := range issues {
			out = append(out, issue.Field)
		}
		return out
	}

	tests := []struct {
		name     string
		cfg      *Config
		valid    bool
		errors   []string
		warnings []string
	}{
		{
			name:  "clean",
			cfg:   withDir(nil),
			valid: true,
		},
		{
			name:     "missing dir",
			cfg:      withDir(func(c *Config) { c.Locales.Dir = filepath.Join(dir, "nope") }),
			valid:    true,
			warnings: []string{"locales.dir"},
		},
		{
			name:     "missing canonical",
			cfg:      withDir(func(c *Config) { c.Locales.Canonical = "base.json" }),
			valid:    true,
			warnings: []string{"locales.canonical"},
		},
		{
			name:     "ts lang with go output",
			cfg:      withDir(func(c *Config) { c.Generate.Lang = "ts" }),
			valid:    true,
			warnings: []string{"generate.output"},
		},
		{
			name: "export over sources",
			cfg: withDir(func(c *Config) {
				c.Export.Output = dir
			}),
			errors: []string{"config", "export.output"},
		},
		{
			name: "export next to sources in another format",
			cfg: withDir(func(c *Config) {
				c.Export.Output = dir
				c.Export.Format = "yaml"
			}),
			errors:   []string{"config"},
			warnings: []string{"export.output"},
		},
		{
			name:     "tiny debounce",
			cfg:      withDir(func(c *Config) { c.Watch.Debounce = 10 * time.Millisecond }),
			valid:    true,
			warnings: []string{"watch.debounce"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateWithDetails(tt.cfg)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.errors, fields(result.Errors))
			assert.Equal(t, tt.warnings, fields(result.Warnings))
		})
	}
}

func TestValidationResultString(t *testing.T) {
	result := &ValidationResult{
		Errors:   []ValidationIssue{{Field: "a", Message: "bad", Suggestions: []string{"fix"}}},
		Warnings: []ValidationIssue{{Field: "b", Message: "odd"}},
	}

	expected := "❌ Validation Errors:\n  • a: bad\n    💡 fix\n\n" +
		"⚠️  Validation Warnings:\n  • b: odd\n"
	assert.Equal(t, expected, result.String())
}

func TestCheckExport(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.CheckExport())

	cfg.Export.Output = "./" + DefaultLocalesDir + "/"
	assert.ErrorIs(t, cfg.CheckExport(), ErrExportOverwritesSources)

	cfg.Export.Format = "toml"
	assert.NoError(t, cfg.CheckExport())
}
