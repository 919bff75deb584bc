package locale

import (
	"regexp"
	"strings"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
)

const (
	openMarker  = "{{"
	closeMarker = "}}"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// PlaceholderSet holds distinct placeholder names in order of first appearance.
type PlaceholderSet []string

// Has reports whether name is in the set.
func (s PlaceholderSet) Has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}

	return false
}

// Missing returns the names of s that other lacks, in s order.
func (s PlaceholderSet) Missing(other PlaceholderSet) []string {
	var out []string
	for _, n := range s {
		if !other.Has(n) {
			out = append(out, n)
		}
	}

	return out
}

// ExtractPlaceholders returns the {{name}} placeholders of value.
//
// The value is malformed when the {{ and }} counts differ, or when fewer
// distinct names were matched than {{ markers were seen. A name used twice
// therefore counts as malformed.
func ExtractPlaceholders(value string) (PlaceholderSet, error) {
	var set PlaceholderSet
	for _, m := range placeholderPattern.FindAllStringSubmatch(value, -1) {
		if !set.Has(m[1]) {
			set = append(set, m[1])
		}
	}

	opens := strings.Count(value, openMarker)
	closes := strings.Count(value, closeMarker)

	if opens != closes {
		return nil, locerrors.MalformedPlaceholder(value)
	}
	if opens > 0 && len(set) != opens {
		return nil, locerrors.MalformedPlaceholder(value)
	}

	return set, nil
}

// Interpolate replaces each {{name}} in value with data[name]. Names without
// data are left as is.
func Interpolate(value string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(value, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		if v, ok := data[name]; ok {
			return v
		}

		return m
	})
}
