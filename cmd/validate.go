package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
	"github.com/conneroisu/localeguard/internal/locale"
)

var validateCmd = &cobra.Command{
	Use:     "validate [dir]",
	Aliases: []string{"v"},
	Short:   "Validate locale files against the canonical locale",
	Long: `Validate every locale file in a directory against the canonical locale.

The run stops at the first failure, in this order: discovery, loading and
parsing (in file name order), then comparison of each locale against the
canonical one (missing keys, extra keys, nesting shape, placeholders).

Examples:
  localeguard validate                    # Validate the configured directory
  localeguard validate src/locales        # Validate a specific directory
  localeguard validate --canonical base.json
  localeguard validate --format json      # Machine-readable result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateFormat string
	validateFlags  *LocaleFlags
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateFlags = AddLocaleFlags(validateCmd)
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

// validationResult is the json output of validate.
type validationResult struct {
	Valid bool `json:"valid"`
	*locale.Report
	Error *validationError `json:"error,omitempty"`
}

type validationError struct {
	Kind    string   `json:"kind"`
	Code    string   `json:"code"`
	File    string   `json:"file,omitempty"`
	Key     string   `json:"key,omitempty"`
	Names   []string `json:"names,omitempty"`
	Message string   `json:"message"`
	Hints   []string `json:"hints,omitempty"`
}

func newValidationError(err error) *validationError {
	out := &validationError{
		Kind:    locerrors.KindOf(err).String(),
		Code:    locerrors.KindOf(err).Code(),
		Message: err.Error(),
	}

	var le *locerrors.LocaleError
	if errors.As(err, &le) {
		out.File = le.File
		out.Key = le.Key
		out.Names = le.Names
	}
	for _, suggestion := range locerrors.SuggestionsFor(err) {
		out.Hints = append(out.Hints, suggestion.Title)
	}

	return out
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateFormat != "text" && validateFormat != "json" {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", validateFormat)
	}

	env, err := prepare(cmd, args, validateFlags)
	if err != nil {
		return err
	}

	report, err := env.validate(commandContext(cmd))

	if validateFormat == "json" {
		result := validationResult{Valid: err == nil, Report: report}
		if err != nil {
			result.Error = newValidationError(err)
		}
		if encErr := writeJSON(cmd.OutOrStdout(), result); encErr != nil {
			return encErr
		}
		if err != nil {
			return &reportedError{err: err}
		}

		return nil
	}

	if err != nil {
		title := fmt.Sprintf("Validation failed: %v", err)
		fmt.Fprintln(cmd.ErrOrStderr(), locerrors.FormatSuggestions(title, locerrors.SuggestionsFor(err)))

		return &reportedError{err: err}
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Summary())

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
