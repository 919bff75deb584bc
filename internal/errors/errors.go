// Package errors defines the failure taxonomy of locale validation.
//
// Every failure is a *LocaleError carrying a Kind, the offending file and key
// where known, and a human-readable message. errors.Is matches on Kind, so
// callers can test against the exported sentinels:
//
//	if errors.Is(err, locerrors.ErrMissingKeys) { ... }
package errors

import (
	"fmt"
	"strings"
)

// NoLocalesFound reports an empty candidate set.
func NoLocalesFound() *LocaleError {
	return &LocaleError{
		Kind:    KindNoLocalesFound,
		Message: "No locale files found",
	}
}

// CanonicalMissing reports that the canonical file is not among the candidates.
func CanonicalMissing(canonical string) *LocaleError {
	return &LocaleError{
		Kind:    KindCanonicalMissing,
		Message: fmt.Sprintf("Canonical locale file %s not found", canonical),
	}
}

// InvalidJSON wraps a parser diagnostic.
func InvalidJSON(cause error) *LocaleError {
	return &LocaleError{
		Kind:    KindInvalidJSON,
		Message: "Invalid JSON",
		Cause:   cause,
	}
}

// InvalidStructure reports a top-level value that is not an object.
func InvalidStructure(found string) *LocaleError {
	return &LocaleError{
		Kind:    KindInvalidStructure,
		Message: fmt.Sprintf("Invalid structure: Expected object, got %s", found),
	}
}

// InvalidValueType reports a leaf that is neither an object nor a string.
func InvalidValueType(key, found string) *LocaleError {
	return &LocaleError{
		Kind:    KindInvalidValueType,
		Key:     key,
		Message: fmt.Sprintf("Key %q has non-string value (found %s)", key, found),
	}
}

// MalformedPlaceholder reports unbalanced or malformed {{...}} markers.
func MalformedPlaceholder(value string) *LocaleError {
	return &LocaleError{
		Kind:    KindMalformedPlaceholder,
		Message: fmt.Sprintf("Malformed placeholder in value: %q", value),
	}
}

// MissingKeys lists canonical keys absent from file.
func MissingKeys(file string, keys []string) *LocaleError {
	return &LocaleError{
		Kind:    KindMissingKeys,
		File:    file,
		Names:   keys,
		Message: "Missing keys compared to canonical: " + strings.Join(keys, ", "),
	}
}

// ExtraKeys lists keys of file absent from the canonical locale.
func ExtraKeys(file string, keys []string) *LocaleError {
	return &LocaleError{
		Kind:    KindExtraKeys,
		File:    file,
		Names:   keys,
		Message: "Extra keys not in canonical: " + strings.Join(keys, ", "),
	}
}

// ShapeMismatch reports a nesting topology that differs from canonical.
func ShapeMismatch(file, canonical string) *LocaleError {
	return &LocaleError{
		Kind:    KindShapeMismatch,
		File:    file,
		Message: "Nesting shape mismatch compared to canonical " + canonical,
	}
}

// MissingPlaceholders lists placeholder names of key that file does not use.
func MissingPlaceholders(file, key string, names []string) *LocaleError {
	return &LocaleError{
		Kind:    KindPlaceholderMismatch,
		File:    file,
		Key:     key,
		Names:   names,
		Message: fmt.Sprintf("Key %q missing placeholders: %s", key, strings.Join(names, ", ")),
	}
}

// ExtraPlaceholders lists placeholder names of key unknown to canonical.
func ExtraPlaceholders(file, key string, names []string) *LocaleError {
	return &LocaleError{
		Kind:    KindPlaceholderMismatch,
		File:    file,
		Key:     key,
		Names:   names,
		Message: fmt.Sprintf("Key %q has extra placeholders: %s", key, strings.Join(names, ", ")),
	}
}
