//go:build property

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLocaleErrorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	kinds := gen.IntRange(int(KindNoLocalesFound), int(KindPlaceholderMismatch)).Map(func(i int) Kind {
		return Kind(i)
	})

	properties.Property("codes are upper snake case with ERR prefix", prop.ForAll(
		func(kind Kind) bool {
			code := kind.Code()
			return strings.HasPrefix(code, "ERR_") &&
				code == strings.ToUpper(code) &&
				!strings.Contains(code, "__")
		},
		kinds,
	))

	properties.Property("errors.Is matches on kind only", prop.ForAll(
		func(a, b Kind, file string) bool {
			err := &LocaleError{Kind: a, File: file, Message: "m"}
			return errors.Is(err, &LocaleError{Kind: b}) == (a == b)
		},
		kinds,
		kinds,
		gen.AlphaString(),
	))

	properties.Property("WithFile never replaces an existing file", prop.ForAll(
		func(first, second string) bool {
			err := NoLocalesFound().WithFile(first).WithFile(second)
			if first == "" {
				return err.File == second
			}
			return err.File == first
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("AttributeFile keeps the kind", prop.ForAll(
		func(kind Kind, file string) bool {
			wrapped := AttributeFile(fmt.Errorf("outer: %w", &LocaleError{Kind: kind, Message: "m"}), file)
			return KindOf(wrapped) == kind && strings.HasPrefix(wrapped.Error(), file+": ")
		},
		kinds,
		gen.Identifier(),
	))

	properties.Property("every known kind has a suggestion", prop.ForAll(
		func(kind Kind) bool {
			return len(SuggestionsFor(&LocaleError{Kind: kind})) > 0
		},
		kinds,
	))

	properties.TestingRun(t)
}
