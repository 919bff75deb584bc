package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// FuzzLoadConfig tests configuration loading with malformed inputs.
func FuzzLoadConfig(f *testing.F) {
	f.Add(`locales:
  dir: src/locales
  canonical: en.json`)
	f.Add(`locales:
  concurrency: "many"`)
	f.Add(`locales:
  concurrency: 65`)
	f.Add(`export:
  output: ../../etc`)
	f.Add(`watch:
  debounce: -1s`)
	f.Add(`malformed: yaml: content`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, yamlContent string) {
		if len(yamlContent) > 50000 {
			t.Skip("Config content too large")
		}

		viper.Reset()
		t.Cleanup(viper.Reset)

		configFile := filepath.Join(t.TempDir(), ".localeguard.yml")
		if err := os.WriteFile(configFile, []byte(yamlContent), 0o644); err != nil {
			t.Skip("Could not write config file")
		}
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return
		}

		config, err := Load()
		if err != nil {
			return
		}

		// Anything Load accepts must pass validation again unchanged.
		if err := config.Validate(); err != nil {
			t.Errorf("loaded config fails validation: %v", err)
		}
		if config.Locales.Concurrency < 1 || config.Locales.Concurrency > 64 {
			t.Errorf("concurrency out of range: %d", config.Locales.Concurrency)
		}
		for _, out := range []string{config.Generate.Output, config.Export.Output} {
			if strings.HasPrefix(filepath.Clean(out), "..") || filepath.IsAbs(out) {
				t.Errorf("output escapes working directory: %q", out)
			}
		}
	})
}

// FuzzValidatePath checks that validated paths never carry shell metacharacters.
func FuzzValidatePath(f *testing.F) {
	f.Add("src/locales")
	f.Add("../secret")
	f.Add("a;b")
	f.Add("/abs/path")
	f.Add("")

	f.Fuzz(func(t *testing.T, path string) {
		if err := validatePath(path); err != nil {
			return
		}
		if path == "" || strings.ContainsAny(path, ";&|$`()<>\"'") {
			t.Errorf("validatePath accepted %q", path)
		}

		if err := validateOutputPath(path); err == nil {
			if filepath.IsAbs(path) || strings.HasPrefix(filepath.Clean(path), "..") {
				t.Errorf("validateOutputPath accepted %q", path)
			}
		}
	})
}
