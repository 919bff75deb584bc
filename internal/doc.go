// Package internal contains the core implementation packages for localeguard.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the localeguard CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - locale: Loading, flattening and comparing locale documents
//   - errors: The validation failure taxonomy and user-facing suggestions
//   - config: Configuration management with validation and security
//   - generate: Typed key constants and format exports from a valid set
//   - bundle: go-i18n message bundles built from the locales
//   - watcher: File system monitoring with debouncing
//   - logging: Structured logging on log/slog
//   - version: Build metadata
//
// # Data Flow
//
// A run is a straight pipeline:
//
//   - Validator discovers the locale files of one directory
//   - Loader parses each file into an ordered Node tree
//   - Flatten turns documents into dot-joined key maps and shape sets
//   - Compare checks every locale against the canonical one
//   - generate and bundle consume the report of a green run
//
// The first failure stops the run and is returned as an *errors.LocaleError.
//
// # Testing Strategy
//
// Each package includes unit tests with testify. Property tests built on
// gopter sit behind the property build tag:
//
//	go test -tags property ./...
package internal
