package locale

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
)

func writeLocales(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestValidateMatchingNestedLocales(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en.json":    `{"common":{"hello":"Hello","goodbye":"Goodbye {{name}}"}}`,
		"de-DE.json": `{"common":{"hello":"Hallo","goodbye":"Auf Wiedersehen {{name}}"}}`,
	})

	report, err := NewValidator(Options{}).Validate(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, report.FileCount())
	assert.Equal(t, 2, report.Keys)
	assert.Equal(t, []string{"de-DE.json", "en.json"}, report.Files)
	assert.Equal(t, "en.json", report.Canonical)
	assert.Equal(t, dir, report.Dir)
	require.NotNil(t, report.CanonicalLocale())
	assert.Equal(t, "en.json", report.CanonicalLocale().Name)
	assert.Equal(t,
		"✓ Validated 2 locale file(s)\n✓ All locales have 2 keys matching canonical\n",
		report.Summary())
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		kind     locerrors.Kind
		contains string
	}{
		{
			name: "extra key in nested structure",
			files: map[string]string{
				"en.json":    `{"common":{"hello":"Hello"}}`,
				"de-DE.json": `{"common":{"hello":"Hallo","extra":"Extra key"}}`,
			},
			kind:     locerrors.KindExtraKeys,
			contains: "Extra keys not in canonical",
		},
		{
			name: "missing key in nested structure",
			files: map[string]string{
				"en.json":    `{"common":{"hello":"Hello","goodbye":"Goodbye"}}`,
				"de-DE.json": `{"common":{"hello":"Hallo"}}`,
			},
			kind:     locerrors.KindMissingKeys,
			contains: "Missing keys compared to canonical",
		},
		{
			name: "placeholder names differ",
			files: map[string]string{
				"en.json":    `{"greeting":"Hello {{name}}"}`,
				"de-DE.json": `{"greeting":"Hallo {{username}}"}`,
			},
			kind:     locerrors.KindPlaceholderMismatch,
			contains: "missing placeholders",
		},
		{
			name:     "malformed placeholder",
			files:    map[string]string{"en.json": `{"broken":"Hello {{name"}`},
			kind:     locerrors.KindMalformedPlaceholder,
			contains: "Malformed placeholder",
		},
		{
			name:     "non-string value in nested structure",
			files:    map[string]string{"en.json": `{"nested":{"bad":123}}`},
			kind:     locerrors.KindInvalidValueType,
			contains: "non-string value",
		},
		{
			name: "nesting shape differs but flattened keys match",
			files: map[string]string{
				"en.json":    `{"common":{"hello":"Hello"}}`,
				"de-DE.json": `{"common.hello":"Hallo"}`,
			},
			kind:     locerrors.KindShapeMismatch,
			contains: "Nesting shape mismatch",
		},
		{
			name:     "invalid json",
			files:    map[string]string{"en.json": `{ invalid json }`},
			kind:     locerrors.KindInvalidJSON,
			contains: "Invalid JSON",
		},
		{
			name:     "only non-canonical file",
			files:    map[string]string{"de-DE.json": `{"a":"b"}`},
			kind:     locerrors.KindCanonicalMissing,
			contains: "Canonical locale file en.json not found",
		},
		{
			name:     "no locale files",
			files:    map[string]string{"notes.txt": "nothing"},
			kind:     locerrors.KindNoLocalesFound,
			contains: "No locale files found",
		},
		{
			name: "first failing locale wins",
			files: map[string]string{
				"en.json": `{"a":"1","b":"2"}`,
				"de.json": `{"a":"1"}`,
				"fr.json": `{"a":"1","b":"2","c":"3"}`,
			},
			kind:     locerrors.KindMissingKeys,
			contains: "de.json: Missing keys compared to canonical: b",
		},
		{
			name: "malformed placeholder in a locale fails at load",
			files: map[string]string{
				"en.json": `{"a":"{{x}}"}`,
				"fr.json": `{"a":"{{x}} {{x}}"}`,
			},
			kind:     locerrors.KindMalformedPlaceholder,
			contains: "fr.json: Malformed placeholder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeLocales(t, tt.files)

			report, err := NewValidator(Options{}).Validate(context.Background(), dir)
			require.Error(t, err)
			assert.Nil(t, report)
			assert.Equal(t, tt.kind, locerrors.KindOf(err), err.Error())
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateMissingDirectory(t *testing.T) {
	_, err := NewValidator(Options{}).Validate(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read locales directory")
	assert.Equal(t, locerrors.KindUnknown, locerrors.KindOf(err))
}

func TestValidatePhases(t *testing.T) {
	var phases []Phase
	dir := writeLocales(t, map[string]string{
		"en.json": `{"a":"x"}`,
		"fr.json": `{"a":"y"}`,
	})

	v := NewValidator(Options{OnPhase: func(p Phase) { phases = append(phases, p) }})
	_, err := v.Validate(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseIdle, PhaseDiscovering, PhaseLoading, PhaseComparing, PhaseDone}, phases)

	phases = nil
	_, err = v.Validate(context.Background(), writeLocales(t, map[string]string{"fr.json": `{}`}))
	require.Error(t, err)
	assert.Equal(t, []Phase{PhaseIdle, PhaseDiscovering, PhaseFailed}, phases)
}

func TestValidateCustomCanonical(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"base.json": `{"a":"x"}`,
		"en.json":   `{"a":"y"}`,
	})

	report, err := NewValidator(Options{Canonical: "base.json"}).Validate(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "base.json", report.Canonical)
	assert.Equal(t, 1, report.Keys)
}

func TestValidateIsStatelessBetweenRuns(t *testing.T) {
	dir := writeLocales(t, map[string]string{
		"en.json": `{"a":"x"}`,
		"fr.json": `{"a":"y"}`,
	})
	v := NewValidator(Options{})

	_, err := v.Validate(context.Background(), dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{}`), 0o644))
	_, err = v.Validate(context.Background(), dir)
	assert.ErrorIs(t, err, locerrors.ErrMissingKeys)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "comparing", PhaseComparing.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
