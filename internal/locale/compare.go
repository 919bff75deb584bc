package locale

import (
	locerrors "github.com/conneroisu/localeguard/internal/errors"
)

// Compare checks other against the canonical locale and returns the first
// discrepancy: missing keys, extra keys, nesting shape, then placeholders per
// canonical key. canonicalName is only used in messages.
func Compare(canonical, other *LocaleFile, canonicalName string) error {
	var missing []string
	for _, key := range canonical.Flattened.keys {
		if !other.Flattened.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return locerrors.MissingKeys(other.Name, missing)
	}

	var extra []string
	for _, key := range other.Flattened.keys {
		if !canonical.Flattened.Has(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		return locerrors.ExtraKeys(other.Name, extra)
	}

	if !canonical.Shape.Equal(other.Shape) {
		return locerrors.ShapeMismatch(other.Name, canonicalName)
	}

	for _, key := range canonical.Flattened.keys {
		if err := comparePlaceholders(key, canonical, other); err != nil {
			return err
		}
	}

	return nil
}

func comparePlaceholders(key string, canonical, other *LocaleFile) error {
	want, err := ExtractPlaceholders(canonical.Flattened.values[key])
	if err != nil {
		return locerrors.AttributeFile(err, canonical.Name)
	}
	got, err := ExtractPlaceholders(other.Flattened.values[key])
	if err != nil {
		return locerrors.AttributeFile(err, other.Name)
	}

	if missing := want.Missing(got); len(missing) > 0 {
		return locerrors.MissingPlaceholders(other.Name, key, missing)
	}
	if extra := got.Missing(want); len(extra) > 0 {
		return locerrors.ExtraPlaceholders(other.Name, key, extra)
	}

	return nil
}
