package locale

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/sync/errgroup"

	locerrors "github.com/conneroisu/localeguard/internal/errors"
	"github.com/conneroisu/localeguard/internal/logging"
)

const (
	DefaultExtension   = ".json"
	DefaultCanonical   = "en.json"
	DefaultConcurrency = 4
)

// LocaleFile is one loaded and structurally valid locale.
type LocaleFile struct {
	Name      string
	Document  *Node
	Flattened *Flattened
	Shape     *Shape
}

// Tag returns the file name without its extension, e.g. "de-DE".
func (f *LocaleFile) Tag(extension string) string {
	return strings.TrimSuffix(f.Name, extension)
}

// Loader discovers and parses locale files.
type Loader struct {
	extension   string
	canonical   string
	concurrency int
	logger      logging.Logger
}

// NewLoader creates a loader. Zero values fall back to the defaults.
func NewLoader(extension, canonical string, concurrency int, logger logging.Logger) *Loader {
	if extension == "" {
		extension = DefaultExtension
	}
	if canonical == "" {
		canonical = DefaultCanonical
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}

	return &Loader{
		extension:   extension,
		canonical:   canonical,
		concurrency: concurrency,
		logger:      logger.WithComponent("loader"),
	}
}

// Discover lists the candidate locale files of fsys in lexical order and
// checks that the canonical file is among them.
func (l *Loader) Discover(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales directory: %w", err)
	}

	var files []string
	hasCanonical := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.extension) {
			continue
		}
		files = append(files, entry.Name())
		if entry.Name() == l.canonical {
			hasCanonical = true
		}
	}

	if len(files) == 0 {
		return nil, locerrors.NoLocalesFound()
	}
	if !hasCanonical {
		return nil, locerrors.CanonicalMissing(l.canonical)
	}

	l.logger.Debug(context.Background(), "Discovered locale files", "count", len(files))

	return files, nil
}

// LoadFile reads, decodes and flattens one file, and checks every value for
// malformed placeholders. Failures are prefixed with the file name.
func (l *Loader) LoadFile(fsys fs.FS, name string) (*LocaleFile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", name, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, locerrors.AttributeFile(err, name)
	}

	flat := Flatten(doc)
	for _, key := range flat.keys {
		if _, err := ExtractPlaceholders(flat.values[key]); err != nil {
			return nil, locerrors.AttributeFile(err, name)
		}
	}

	return &LocaleFile{
		Name:      name,
		Document:  doc,
		Flattened: flat,
		Shape:     ShapeOf(doc),
	}, nil
}

// LoadAll loads names concurrently. The returned slice follows names, and on
// failure the error of the earliest failing name is returned regardless of
// which read finished first.
func (l *Loader) LoadAll(ctx context.Context, fsys fs.FS, names []string) ([]*LocaleFile, error) {
	files := make([]*LocaleFile, len(names))
	errs := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			files[i], errs[i] = l.LoadFile(fsys, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			l.logger.Debug(ctx, "Locale file failed to load", "file", names[i])
			return nil, err
		}
	}

	return files, nil
}
