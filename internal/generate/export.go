package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/localeguard/internal/locale"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Export encodes a locale document in format. JSON and YAML keep document
// key order; TOML sorts keys within each table.
func Export(doc *locale.Node, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		raw, err := doc.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')

		return buf.Bytes(), nil

	case FormatYAML:
		return yaml.Marshal(yamlNode(doc))

	case FormatTOML:
		return toml.Marshal(doc.ToMap())

	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func yamlNode(doc *locale.Node) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range doc.Keys() {
		child, _ := doc.Get(key)

		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		switch c := child.(type) {
		case locale.Leaf:
			out.Content = append(out.Content, k,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c)})
		case *locale.Node:
			out.Content = append(out.Content, k, yamlNode(c))
		}
	}

	return out
}

// ExportAll writes every locale to dir as <tag>.<format> and returns the
// written paths in input order.
func ExportAll(dir, format, extension string, locales []*locale.LocaleFile) ([]string, error) {
	paths := make([]string, 0, len(locales))
	for _, l := range locales {
		data, err := Export(l.Document, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name, err)
		}

		path := filepath.Join(dir, l.Tag(extension)+"."+format)
		if err := WriteFile(path, data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
