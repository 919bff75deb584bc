//go:build property

package watcher

import (
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDebouncerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9876)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("flush keeps one sorted event per path", prop.ForAll(
		func(paths []string) bool {
			if len(paths) == 0 {
				return true
			}

			d := newDebouncer(time.Hour)
			for _, p := range paths {
				d.addEvent(ChangeEvent{Path: p, Type: EventTypeModified})
			}
			d.stop()
			d.flush()

			batch := <-d.output

			distinct := make(map[string]bool)
			for _, p := range paths {
				distinct[p] = true
			}
			if len(batch) != len(distinct) {
				return false
			}

			return sort.SliceIsSorted(batch, func(i, j int) bool { return batch[i].Path < batch[j].Path })
		},
		gen.SliceOf(gen.OneConstOf("en.json", "de-DE.json", "fr.json", "ja.json", "pt-BR.json")),
	))

	properties.Property("last event per path wins", prop.ForAll(
		func(types []int) bool {
			if len(types) == 0 {
				return true
			}

			d := newDebouncer(time.Hour)
			for _, ty := range types {
				d.addEvent(ChangeEvent{Path: "en.json", Type: EventType(ty)})
			}
			d.stop()
			d.flush()

			batch := <-d.output
			return len(batch) == 1 && batch[0].Type == EventType(types[len(types)-1])
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("extension filter matches suffix only", prop.ForAll(
		func(stem string) bool {
			filter := ExtensionFilter(".json")
			return filter(stem+".json") && !filter(stem+".json.bak")
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
