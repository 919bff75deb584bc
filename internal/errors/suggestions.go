package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Suggestion is an actionable hint shown next to a validation failure.
type Suggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// SuggestionsFor returns hints for err based on its kind. Errors that are not
// a LocaleError get no suggestions.
func SuggestionsFor(err error) []Suggestion {
	var le *LocaleError
	if !errors.As(err, &le) {
		return nil
	}

	switch le.Kind {
	case KindNoLocalesFound:
		return []Suggestion{
			{
				Title:       "Check the locales directory",
				Description: "Locale files must sit directly in the directory; subdirectories are not searched",
				Command:     "localeguard validate path/to/locales",
			},
			{
				Title:   "Check the file extension",
				Example: "localeguard validate --extension .json",
			},
		}
	case KindCanonicalMissing:
		return []Suggestion{
			{
				Title:       "Point at the canonical locale",
				Description: "The canonical file defines the keys every other locale must have",
				Example:     "localeguard validate --canonical base.json",
			},
		}
	case KindInvalidJSON, KindInvalidStructure:
		return []Suggestion{
			{
				Title:       "Fix the JSON syntax",
				Description: "Each locale file must hold a single JSON object",
				Example:     `{"common": {"hello": "Hello"}}`,
			},
		}
	case KindInvalidValueType:
		return []Suggestion{
			{
				Title:       "Use string values only",
				Description: fmt.Sprintf("Quote the value of %q or nest it in an object", le.Key),
			},
		}
	case KindMalformedPlaceholder:
		return []Suggestion{
			{
				Title:       "Balance the placeholder braces",
				Description: "Placeholders are written {{name}} with a letter, digit or underscore name, each used once per value",
				Example:     "Hello {{name}}, you have {{count}} messages",
			},
		}
	case KindMissingKeys:
		return []Suggestion{
			{
				Title:       "Translate the missing keys",
				Description: fmt.Sprintf("Add to %s: %s", le.File, strings.Join(le.Names, ", ")),
			},
		}
	case KindExtraKeys:
		return []Suggestion{
			{
				Title:       "Remove the extra keys or add them to the canonical locale",
				Description: strings.Join(le.Names, ", "),
			},
		}
	case KindShapeMismatch:
		return []Suggestion{
			{
				Title:       "Mirror the canonical nesting",
				Description: "Objects must nest the same way as in the canonical locale, even where the flattened keys agree",
			},
		}
	case KindPlaceholderMismatch:
		return []Suggestion{
			{
				Title:       "Keep placeholder names untranslated",
				Description: fmt.Sprintf("%q must use exactly the placeholders of the canonical value", le.Key),
			},
		}
	default:
		return nil
	}
}

// FormatSuggestions renders suggestions as a numbered list under title.
func FormatSuggestions(title string, suggestions []Suggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n", suggestion.Example))
		}
	}

	return output.String()
}
