package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
)

func localeFile(t *testing.T, name, input string) *LocaleFile {
	t.Helper()
	doc := mustDecode(t, input)

	return &LocaleFile{
		Name:      name,
		Document:  doc,
		Flattened: Flatten(doc),
		Shape:     ShapeOf(doc),
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		locale    string
		kind      locerrors.Kind
		message   string
		names     []string
	}{
		{
			name:      "matching nested locales",
			canonical: `{"common":{"hello":"Hello","goodbye":"Goodbye {{name}}"}}`,
			locale:    `{"common":{"goodbye":"Auf Wiedersehen {{name}}","hello":"Hallo"}}`,
		},
		{
			name:      "missing nested key",
			canonical: `{"common":{"hello":"Hello","goodbye":"Goodbye"}}`,
			locale:    `{"common":{"hello":"Hallo"}}`,
			kind:      locerrors.KindMissingKeys,
			message:   "de-DE.json: Missing keys compared to canonical: common.goodbye",
			names:     []string{"common.goodbye"},
		},
		{
			name:      "all missing keys in canonical order",
			canonical: `{"a":"1","b":"2","c":"3"}`,
			locale:    `{"b":"2"}`,
			kind:      locerrors.KindMissingKeys,
			message:   "de-DE.json: Missing keys compared to canonical: a, c",
			names:     []string{"a", "c"},
		},
		{
			name:      "extra nested key",
			canonical: `{"common":{"hello":"Hello"}}`,
			locale:    `{"common":{"hello":"Hallo","extra":"Extra key"}}`,
			kind:      locerrors.KindExtraKeys,
			message:   "de-DE.json: Extra keys not in canonical: common.extra",
			names:     []string{"common.extra"},
		},
		{
			name:      "missing reported before extra",
			canonical: `{"a":"1","b":"2"}`,
			locale:    `{"a":"1","c":"3"}`,
			kind:      locerrors.KindMissingKeys,
			names:     []string{"b"},
		},
		{
			name:      "same flattened keys different nesting",
			canonical: `{"common":{"hello":"Hello"}}`,
			locale:    `{"common.hello":"Hallo"}`,
			kind:      locerrors.KindShapeMismatch,
			message:   "de-DE.json: Nesting shape mismatch compared to canonical en.json",
		},
		{
			name:      "placeholder renamed",
			canonical: `{"greeting":"Hello {{name}}"}`,
			locale:    `{"greeting":"Hallo {{username}}"}`,
			kind:      locerrors.KindPlaceholderMismatch,
			message:   `de-DE.json: Key "greeting" missing placeholders: name`,
			names:     []string{"name"},
		},
		{
			name:      "extra placeholder",
			canonical: `{"greeting":"Hello"}`,
			locale:    `{"greeting":"Hallo {{name}}"}`,
			kind:      locerrors.KindPlaceholderMismatch,
			message:   `de-DE.json: Key "greeting" has extra placeholders: name`,
			names:     []string{"name"},
		},
		{
			name:      "placeholders checked in canonical key order",
			canonical: `{"a":"{{x}}","b":"{{y}}"}`,
			locale:    `{"b":"none","a":"none"}`,
			kind:      locerrors.KindPlaceholderMismatch,
			message:   `de-DE.json: Key "a" missing placeholders: x`,
		},
		{
			name:      "placeholder order does not matter",
			canonical: `{"msg":"{{a}} {{b}}"}`,
			locale:    `{"msg":"{{b}} {{a}}"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical := localeFile(t, "en.json", tt.canonical)
			other := localeFile(t, "de-DE.json", tt.locale)

			err := Compare(canonical, other, "en.json")
			if tt.kind == locerrors.KindUnknown {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.kind, locerrors.KindOf(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
			if tt.names != nil {
				var le *locerrors.LocaleError
				require.ErrorAs(t, err, &le)
				assert.Equal(t, tt.names, le.Names)
			}
		})
	}
}

func TestCompareIdentical(t *testing.T) {
	en := localeFile(t, "en.json", `{"a":{"b":"{{x}}"},"c":"plain"}`)

	assert.NoError(t, Compare(en, en, "en.json"))
}

func TestCompareListsArrayIndexKeysNumerically(t *testing.T) {
	canonical := localeFile(t, "en.json", `{"b":"x","2":"a","1":"b"}`)
	other := localeFile(t, "fr.json", `{"b":"y"}`)

	err := Compare(canonical, other, "en.json")
	assert.EqualError(t, err, "fr.json: Missing keys compared to canonical: 1, 2")
}
