// Package bundle loads validated locales into a go-i18n bundle so that
// translations can be resolved at runtime, and smoke-tests that every
// canonical key resolves to the locale's own value in every language.
package bundle

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"golang.org/x/text/language"

	"github.com/conneroisu/localeguard/internal/locale"
	"github.com/conneroisu/localeguard/internal/logging"
)

// Translator is a thin wrapper around a go-i18n Bundle built from locale
// files whose names are BCP 47 tags (de-DE.json, fr.json).
type Translator struct {
	bundle     *i18n.Bundle
	defaultTag language.Tag
	tags       map[string]language.Tag
	skipped    []string
}

// New builds a Translator with canonical as the default language. Locale
// files whose name is not a language tag, or names a language go-i18n has no
// plural rule for, are skipped and reported by Skipped. The canonical locale
// must be a supported language tag.
func New(canonical *locale.LocaleFile, locales []*locale.LocaleFile, extension string, logger logging.Logger) (*Translator, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	defaultTag, err := language.Parse(canonical.Tag(extension))
	if err != nil {
		return nil, fmt.Errorf("canonical %s is not a language tag: %w", canonical.Name, err)
	}

	t := &Translator{
		bundle:     i18n.NewBundle(defaultTag),
		defaultTag: defaultTag,
		tags:       make(map[string]language.Tag, len(locales)),
	}

	owners := make(map[language.Tag]string, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l.Tag(extension))
		if err != nil {
			logger.Warn(context.Background(), err, "Skipping locale without a language tag", "file", l.Name)
			t.skipped = append(t.skipped, l.Name)
			continue
		}
		if prev, dup := owners[tag]; dup {
			return nil, fmt.Errorf("%s and %s both resolve to language %s", prev, l.Name, tag)
		}

		messages := make([]*i18n.Message, 0, l.Flattened.Len())
		for _, key := range l.Flattened.Keys() {
			value, _ := l.Flattened.Get(key)
			messages = append(messages, &i18n.Message{ID: key, Other: value})
		}
		// AddMessages only fails for languages without a plural rule.
		if err := t.bundle.AddMessages(tag, messages...); err != nil {
			if l.Name == canonical.Name {
				return nil, fmt.Errorf("%s: %w", l.Name, err)
			}
			logger.Warn(context.Background(), err, "Skipping locale unsupported by go-i18n", "file", l.Name)
			t.skipped = append(t.skipped, l.Name)
			continue
		}
		owners[tag] = l.Name
		t.tags[l.Name] = tag

		logger.Debug(context.Background(), "Added locale to bundle",
			"file", l.Name, "language", tag.String(), "messages", len(messages))
	}

	return t, nil
}

// Languages returns the bundle's languages, default first.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Skipped returns the locale files left out of the bundle.
func (t *Translator) Skipped() []string {
	return t.skipped
}

// LanguageOf returns the tag a locale file was added under.
func (t *Translator) LanguageOf(name string) (language.Tag, bool) {
	tag, ok := t.tags[name]
	return tag, ok
}

// Localize renders key for lang and substitutes data into its placeholders.
// When lang lacks the key the default language's value is returned together
// with an *i18n.MessageNotFoundErr.
func (t *Translator) Localize(lang, key string, data map[string]string) (string, error) {
	localizer := i18n.NewLocalizer(t.bundle, lang, t.defaultTag.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		TemplateParser: template.IdentityParser{},
	})

	return locale.Interpolate(msg, data), err
}

// SmokeResult summarises a Smoke run.
type SmokeResult struct {
	Languages int
	Messages  int
	Empty     int
	Skipped   []string
}

// Smoke builds a Translator and resolves every canonical key in every
// language, failing on the first key that does not resolve to the locale's
// own value. Empty values are counted but not resolved.
func Smoke(ctx context.Context, canonical *locale.LocaleFile, locales []*locale.LocaleFile, extension string, logger logging.Logger) (*SmokeResult, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	t, err := New(canonical, locales, extension, logger)
	if err != nil {
		return nil, err
	}

	result := &SmokeResult{Skipped: t.Skipped()}
	keys := canonical.Flattened.Keys()

	for _, l := range locales {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tag, ok := t.LanguageOf(l.Name)
		if !ok {
			continue
		}
		result.Languages++

		for _, key := range keys {
			want, ok := l.Flattened.Get(key)
			if ok && want == "" {
				result.Empty++
				continue
			}

			got, err := t.Localize(tag.String(), key, nil)
			var notFound *i18n.MessageNotFoundErr
			switch {
			case errors.As(err, &notFound):
				return nil, fmt.Errorf("%s: key %q does not resolve for %s", l.Name, key, tag)
			case err != nil:
				return nil, fmt.Errorf("%s: key %q: %w", l.Name, key, err)
			case got != want:
				return nil, fmt.Errorf("%s: key %q resolved to %q, want %q", l.Name, key, got, want)
			}
			result.Messages++
		}
	}

	logger.Info(ctx, "Bundle smoke test passed",
		"languages", result.Languages, "messages", result.Messages, "skipped", len(result.Skipped))

	return result, nil
}
