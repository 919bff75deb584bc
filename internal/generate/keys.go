// Package generate derives artifacts from a validated set of locales: the
// translation key enumeration (as Go or TypeScript source) and per-locale
// exports in json, yaml or toml.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/localeguard/internal/locale"
)

// Keys returns the distinct dotted keys of flat in sorted order.
func Keys(flat *locale.Flattened) []string {
	keys := flat.Keys()
	sort.Strings(keys)

	return keys
}

// GoOptions configures Go source generation.
type GoOptions struct {
	Package   string
	Extension string
}

type goKey struct {
	Ident string
	Path  string
}

type goEntry struct {
	Ident string
	Value string
}

type goLocale struct {
	Tag     string
	Var     string
	Entries []goEntry
}

type goData struct {
	Package string
	Keys    []goKey
	Locales []goLocale
}

var goTemplate = template.Must(template.New("keys").Parse(`// Code generated by localeguard; DO NOT EDIT.

package {{.Package}}

// TranslationKey is a dotted key path of the canonical locale.
type TranslationKey string

const (
{{- range .Keys}}
	{{.Ident}} TranslationKey = {{printf "%q" .Path}}
{{- end}}
)

// TranslationKeys lists every key in sorted order.
var TranslationKeys = []TranslationKey{
{{- range .Keys}}
	{{.Ident}},
{{- end}}
}
{{range .Locales}}
// {{.Var}} holds the {{.Tag}} translations.
var {{.Var}} = map[TranslationKey]string{
{{- range .Entries}}
	{{.Ident}}: {{printf "%q" .Value}},
{{- end}}
}
{{end}}
// Locales maps locale tags to their translations.
var Locales = map[string]map[TranslationKey]string{
{{- range .Locales}}
	{{printf "%q" .Tag}}: {{.Var}},
{{- end}}
}
`))

var titler = cases.Title(language.Und, cases.NoLower)

// GoSource renders a gofmt-formatted Go file with a TranslationKey constant
// per canonical key and one map per locale.
func GoSource(opts GoOptions, canonical *locale.LocaleFile, locales []*locale.LocaleFile) ([]byte, error) {
	keys := Keys(canonical.Flattened)

	data := goData{Package: opts.Package}
	idents := make(map[string]string, len(keys))
	seen := make(map[string]string, len(keys))

	for _, key := range keys {
		ident := "Key" + Identifier(key)
		if ident == "Key" {
			return nil, fmt.Errorf("key %q has no identifier characters", key)
		}
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("keys %q and %q both map to identifier %s", prev, key, ident)
		}
		seen[ident] = key
		idents[key] = ident
		data.Keys = append(data.Keys, goKey{Ident: ident, Path: key})
	}

	vars := make(map[string]string, len(locales))
	for _, l := range locales {
		tag := l.Tag(opts.Extension)
		name := "Locale" + Identifier(tag)
		if prev, dup := vars[name]; dup {
			return nil, fmt.Errorf("locales %q and %q both map to identifier %s", prev, tag, name)
		}
		vars[name] = tag

		gl := goLocale{Tag: tag, Var: name}
		for _, key := range keys {
			if v, ok := l.Flattened.Get(key); ok {
				gl.Entries = append(gl.Entries, goEntry{Ident: idents[key], Value: v})
			}
		}
		data.Locales = append(data.Locales, gl)
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render Go source: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format Go source: %w", err)
	}

	return src, nil
}

// Identifier turns a dotted key or locale tag into an exported Go identifier
// fragment: "common.goodbye_msg" becomes "CommonGoodbyeMsg" and "de-DE"
// becomes "DeDE".
func Identifier(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, w := range words {
		b.WriteString(titler.String(w))
	}

	return b.String()
}

// TypeScript renders the TranslationKey union type and the translationKeys
// const array.
func TypeScript(keys []string) []byte {
	var b strings.Builder

	b.WriteString("export type TranslationKey =\n")
	if len(keys) == 0 {
		b.WriteString("  never;\n")
	} else {
		for i, k := range keys {
			fmt.Fprintf(&b, "  | '%s'", escapeTS(k))
			if i == len(keys)-1 {
				b.WriteString(";")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nexport const translationKeys = [\n")
	for i, k := range keys {
		fmt.Fprintf(&b, "  '%s'", escapeTS(k))
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("] as const satisfies readonly TranslationKey[];\n")

	return []byte(b.String())
}

// Line terminators end a single-quoted literal, so they are escaped too.
var tsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

func escapeTS(s string) string {
	return tsEscaper.Replace(s)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
