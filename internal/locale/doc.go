// Package locale validates a directory of locale files against one canonical
// locale.
//
// A locale file is a JSON object whose values are strings or nested objects.
// Every non-canonical file must have the same flattened key set, the same
// nesting shape, and the same {{placeholder}} names per key as the canonical
// file. Validation is fail-fast: the first discrepancy, in file discovery
// order, ends the run.
//
// The package is organized bottom-up:
//
//   - ExtractPlaceholders scans one value for {{name}} markers.
//   - Decode, Flatten and ShapeOf turn file bytes into a Document, its
//     dotted-key mapping and its topology.
//   - Loader discovers and loads files; Compare checks one locale against the
//     canonical one; Validator drives both.
package locale
