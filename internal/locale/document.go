package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
)

// Document is one value of a locale file: either a Leaf or a *Node.
type Document interface {
	isDocument()
}

// Leaf is a translatable string.
type Leaf string

func (Leaf) isDocument() {}

// Node is an object of nested documents. Keys enumerate the way JavaScript
// objects do: array-index keys ("0", "17") first in ascending numeric order,
// then every other key in document order.
type Node struct {
	keys     []string
	children map[string]Document
}

func (*Node) isDocument() {}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{children: make(map[string]Document)}
}

// Set stores child under key. A key that already exists keeps its position.
func (n *Node) Set(key string, child Document) *Node {
	if _, exists := n.children[key]; !exists {
		n.insertKey(key)
	}
	n.children[key] = child

	return n
}

func (n *Node) insertKey(key string) {
	index, ok := arrayIndex(key)
	if !ok {
		n.keys = append(n.keys, key)
		return
	}

	pos := 0
	for ; pos < len(n.keys); pos++ {
		other, isIndex := arrayIndex(n.keys[pos])
		if !isIndex || other > index {
			break
		}
	}
	n.keys = slices.Insert(n.keys, pos, key)
}

// arrayIndex reports whether key is a canonical decimal below 2^32-1 and
// returns its value.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	v, err := strconv.ParseUint(key, 10, 32)
	if err != nil || v == math.MaxUint32 {
		return 0, false
	}

	return v, true
}

// Get returns the child stored under key.
func (n *Node) Get(key string) (Document, bool) {
	child, ok := n.children[key]

	return child, ok
}

// Keys returns the node keys in document order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)

	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.keys)
}

// MarshalJSON encodes the node with keys in document order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var v []byte
		switch child := n.children[key].(type) {
		case Leaf:
			v, err = json.Marshal(string(child))
		case *Node:
			v, err = child.MarshalJSON()
		default:
			err = fmt.Errorf("unsupported document value at %q", key)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ToMap converts the node into plain nested maps for generic encoders.
func (n *Node) ToMap() map[string]interface{} {
	out := make(map[string]interface{}, len(n.keys))
	for _, key := range n.keys {
		switch child := n.children[key].(type) {
		case Leaf:
			out[key] = string(child)
		case *Node:
			out[key] = child.ToMap()
		}
	}

	return out
}

// invalidValue marks a JSON value that is neither an object nor a string.
// It only lives between decoding and the structure check.
type invalidValue struct {
	found string
}

func (invalidValue) isDocument() {}

// Decode parses a locale file. The top level must be an object whose values
// are strings or nested objects.
func Decode(data []byte) (*Node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, locerrors.InvalidJSON(err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, locerrors.InvalidJSON(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		if ok && delim == '[' {
			return nil, locerrors.InvalidStructure("array")
		}

		return nil, locerrors.InvalidStructure(jsonKind(tok))
	}

	root, err := decodeNode(dec)
	if err != nil {
		return nil, locerrors.InvalidJSON(err)
	}

	if err := checkValues(root, ""); err != nil {
		return nil, err
	}

	return root, nil
}

// decodeNode reads object members after the opening brace has been consumed.
func decodeNode(dec *json.Decoder) (*Node, error) {
	node := NewNode()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.Set(key, child)
			case '[':
				if err := skipArray(dec); err != nil {
					return nil, err
				}
				node.Set(key, invalidValue{found: "array"})
			default:
				return nil, fmt.Errorf("unexpected delimiter %v", v)
			}
		case string:
			node.Set(key, Leaf(v))
		default:
			node.Set(key, invalidValue{found: jsonKind(v)})
		}
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}

	return node, nil
}

func skipArray(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}

	return nil
}

// checkValues reports the first value, in document order, that matches
// neither Leaf nor Node.
func checkValues(node *Node, prefix string) error {
	for _, key := range node.keys {
		path := joinKey(prefix, key)
		switch child := node.children[key].(type) {
		case *Node:
			if err := checkValues(child, path); err != nil {
				return err
			}
		case invalidValue:
			return locerrors.InvalidValueType(path, child.found)
		}
	}

	return nil
}

func jsonKind(tok json.Token) string {
	switch tok.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	default:
		return fmt.Sprintf("%T", tok)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
