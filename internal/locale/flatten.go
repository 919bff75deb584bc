package locale

import (
	"encoding/json"
	"sort"
	"strings"
)

// Flattened maps dotted key paths to leaf strings, keeping document order.
type Flattened struct {
	keys   []string
	values map[string]string
}

// Keys returns the dotted paths in document order.
func (f *Flattened) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)

	return out
}

// Get returns the value stored at path.
func (f *Flattened) Get(path string) (string, bool) {
	v, ok := f.values[path]

	return v, ok
}

// Has reports whether path is present.
func (f *Flattened) Has(path string) bool {
	_, ok := f.values[path]

	return ok
}

// Len returns the number of distinct paths.
func (f *Flattened) Len() int {
	return len(f.keys)
}

// Map returns a copy of the path to value mapping.
func (f *Flattened) Map() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}

	return out
}

func (f *Flattened) set(path, value string) {
	if _, exists := f.values[path]; !exists {
		f.keys = append(f.keys, path)
	}
	f.values[path] = value
}

// Flatten walks node and records every leaf under its dotted path. A literal
// dotted key colliding with a nested path is overwritten by whichever comes
// later in the document.
func Flatten(node *Node) *Flattened {
	f := &Flattened{values: make(map[string]string)}
	flattenInto(f, node, "")

	return f
}

func flattenInto(f *Flattened, node *Node, prefix string) {
	for _, key := range node.keys {
		path := joinKey(prefix, key)
		switch child := node.children[key].(type) {
		case *Node:
			flattenInto(f, child, path)
		case Leaf:
			f.set(path, string(child))
		}
	}
}

// Shape is the nesting topology of a document with leaf values erased.
type Shape struct {
	children map[string]*Shape
}

// IsLeaf reports whether the shape stands for a string value.
func (s *Shape) IsLeaf() bool {
	return s.children == nil
}

// ShapeOf builds the shape of node.
func ShapeOf(node *Node) *Shape {
	s := &Shape{children: make(map[string]*Shape, node.Len())}
	for _, key := range node.keys {
		switch child := node.children[key].(type) {
		case *Node:
			s.children[key] = ShapeOf(child)
		default:
			s.children[key] = &Shape{}
		}
	}

	return s
}

// String serializes the shape with keys sorted at every level and leaves
// rendered as true, e.g. {"common":{"hello":true}}.
func (s *Shape) String() string {
	var b strings.Builder
	s.write(&b)

	return b.String()
}

func (s *Shape) write(b *strings.Builder) {
	if s.IsLeaf() {
		b.WriteString("true")
		return
	}

	keys := make([]string, 0, len(s.children))
	for k := range s.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		quoted, _ := json.Marshal(k)
		b.Write(quoted)
		b.WriteByte(':')
		s.children[k].write(b)
	}
	b.WriteByte('}')
}

// Equal reports whether both shapes have the same topology.
func (s *Shape) Equal(other *Shape) bool {
	return s.String() == other.String()
}
