package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a locale validation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNoLocalesFound
	KindCanonicalMissing
	KindInvalidJSON
	KindInvalidStructure
	KindInvalidValueType
	KindMalformedPlaceholder
	KindMissingKeys
	KindExtraKeys
	KindShapeMismatch
	KindPlaceholderMismatch
)

var kindNames = map[Kind]string{
	KindNoLocalesFound:       "NoLocalesFound",
	KindCanonicalMissing:     "CanonicalMissing",
	KindInvalidJSON:          "InvalidJSON",
	KindInvalidStructure:     "InvalidStructure",
	KindInvalidValueType:     "InvalidValueType",
	KindMalformedPlaceholder: "MalformedPlaceholder",
	KindMissingKeys:          "MissingKeys",
	KindExtraKeys:            "ExtraKeys",
	KindShapeMismatch:        "ShapeMismatch",
	KindPlaceholderMismatch:  "PlaceholderMismatch",
}

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// Code returns a stable machine-readable code, e.g. ERR_MISSING_KEYS.
func (k Kind) Code() string {
	name := k.String()

	var b strings.Builder
	b.WriteString("ERR")
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			// keep acronyms like JSON together
			if i == 0 || !(name[i-1] >= 'A' && name[i-1] <= 'Z') {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}

	return strings.ToUpper(b.String())
}

// LocaleError is a structured validation failure.
type LocaleError struct {
	Kind    Kind
	File    string
	Key     string
	Names   []string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *LocaleError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	if e.File != "" {
		return e.File + ": " + msg
	}

	return msg
}

// Unwrap returns the underlying cause error.
func (e *LocaleError) Unwrap() error {
	return e.Cause
}

// Is matches any *LocaleError of the same kind.
func (e *LocaleError) Is(target error) bool {
	var t *LocaleError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}

	return false
}

// WithFile returns a copy of the error attributed to file. An error that
// already names a file is returned unchanged.
func (e *LocaleError) WithFile(file string) *LocaleError {
	if e.File != "" {
		return e
	}
	cp := *e
	cp.File = file

	return &cp
}

// Sentinels for errors.Is checks.
var (
	ErrNoLocalesFound       = &LocaleError{Kind: KindNoLocalesFound}
	ErrCanonicalMissing     = &LocaleError{Kind: KindCanonicalMissing}
	ErrInvalidJSON          = &LocaleError{Kind: KindInvalidJSON}
	ErrInvalidStructure     = &LocaleError{Kind: KindInvalidStructure}
	ErrInvalidValueType     = &LocaleError{Kind: KindInvalidValueType}
	ErrMalformedPlaceholder = &LocaleError{Kind: KindMalformedPlaceholder}
	ErrMissingKeys          = &LocaleError{Kind: KindMissingKeys}
	ErrExtraKeys            = &LocaleError{Kind: KindExtraKeys}
	ErrShapeMismatch        = &LocaleError{Kind: KindShapeMismatch}
	ErrPlaceholderMismatch  = &LocaleError{Kind: KindPlaceholderMismatch}
)

// KindOf reports the kind of err, or KindUnknown if err is not a LocaleError.
func KindOf(err error) Kind {
	var le *LocaleError
	if errors.As(err, &le) {
		return le.Kind
	}

	return KindUnknown
}

// AttributeFile prefixes err with file when it is a LocaleError, and wraps it
// otherwise.
func AttributeFile(err error, file string) error {
	if err == nil {
		return nil
	}

	var le *LocaleError
	if errors.As(err, &le) {
		return le.WithFile(file)
	}

	return fmt.Errorf("%s: %w", file, err)
}
