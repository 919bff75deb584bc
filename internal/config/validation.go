package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ValidationIssue is a configuration problem with optional suggestions.
type ValidationIssue struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (vi *ValidationIssue) Error() string {
	return fmt.Sprintf("validation error in %s: %s", vi.Field, vi.Message)
}

// ValidationResult holds the result of a detailed configuration check.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// ValidateWithDetails checks config beyond Validate: it looks at the file
// system and at combinations of settings that are legal but likely wrong.
// Errors from Validate are reported under the "config" field.
func ValidateWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{}

	if err := validateConfig(config); err != nil {
		result.Errors = append(result.Errors, ValidationIssue{
			Field:   "config",
			Message: err.Error(),
		})
	}

	inspectLocales(&config.Locales, result)
	inspectGenerate(config, result)
	inspectExport(config, result)
	inspectWatch(&config.Watch, result)

	result.Valid = !result.HasErrors()

	return result
}

func inspectLocales(config *LocalesConfig, result *ValidationResult) {
	info, err := os.Stat(config.Dir)
	switch {
	case err != nil:
		result.Warnings = append(result.Warnings, ValidationIssue{
			Field:   "locales.dir",
			Value:   config.Dir,
			Message: "directory does not exist",
			Suggestions: []string{
				"Create the directory or point locales.dir at your locale files",
			},
		})

		return
	case !info.IsDir():
		result.Errors = append(result.Errors, ValidationIssue{
			Field:   "locales.dir",
			Value:   config.Dir,
			Message: "not a directory",
		})

		return
	}

	if _, err := os.Stat(filepath.Join(config.Dir, config.Canonical)); err != nil {
		result.Warnings = append(result.Warnings, ValidationIssue{
			Field:   "locales.canonical",
			Value:   config.Canonical,
			Message: fmt.Sprintf("%s not found in %s", config.Canonical, config.Dir),
		})
	}
}

func inspectGenerate(config *Config, result *ValidationResult) {
	want := ".go"
	if config.Generate.Lang == "ts" {
		want = ".ts"
	}

	if ext := filepath.Ext(config.Generate.Output); ext != want {
		result.Warnings = append(result.Warnings, ValidationIssue{
			Field:   "generate.output",
			Value:   config.Generate.Output,
			Message: fmt.Sprintf("lang %s usually writes a %s file, got %q", config.Generate.Lang, want, ext),
			Suggestions: []string{
				"Default for this lang: " + DefaultGenerateOutput(config.Generate.Lang, config.Generate.Package),
			},
		})
	}
}

func inspectExport(config *Config, result *ValidationResult) {
	if !samePath(config.Export.Output, config.Locales.Dir) {
		return
	}

	issue := ValidationIssue{
		Field:       "export.output",
		Value:       config.Export.Output,
		Message:     "export writes into the locales directory",
		Suggestions: []string{"Use a separate directory such as " + DefaultExportOutput},
	}

	if err := config.CheckExport(); err != nil {
		issue.Message = err.Error()
		result.Errors = append(result.Errors, issue)

		return
	}

	result.Warnings = append(result.Warnings, issue)
}

func inspectWatch(config *WatchConfig, result *ValidationResult) {
	if config.Debounce > 0 && config.Debounce < 50*time.Millisecond {
		result.Warnings = append(result.Warnings, ValidationIssue{
			Field:       "watch.debounce",
			Value:       config.Debounce,
			Message:     "very short debounce re-validates on every editor write",
			Suggestions: []string{fmt.Sprintf("Try %s", DefaultWatchDebounce)},
		})
	}
}
