package locale

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/conneroisu/localeguard/internal/logging"
)

// Phase is a step of a validation run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDiscovering
	PhaseLoading
	PhaseComparing
	PhaseDone
	PhaseFailed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDiscovering:
		return "discovering"
	case PhaseLoading:
		return "loading"
	case PhaseComparing:
		return "comparing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a Validator.
type Options struct {
	Extension   string
	Canonical   string
	Concurrency int
	Logger      logging.Logger
	// OnPhase, when set, is called on every phase transition.
	OnPhase func(Phase)
}

// Validator checks a locale directory against its canonical locale.
type Validator struct {
	loader    *Loader
	canonical string
	logger    logging.Logger
	onPhase   func(Phase)
}

// NewValidator creates a validator from opts.
func NewValidator(opts Options) *Validator {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}
	loader := NewLoader(opts.Extension, opts.Canonical, opts.Concurrency, logger)

	return &Validator{
		loader:    loader,
		canonical: loader.canonical,
		logger:    logger.WithComponent("validator"),
		onPhase:   opts.OnPhase,
	}
}

// Report is the outcome of a successful validation run.
type Report struct {
	Dir       string        `json:"dir"`
	Canonical string        `json:"canonical"`
	Files     []string      `json:"files"`
	Keys      int           `json:"keys"`
	Locales   []*LocaleFile `json:"-"`
}

// FileCount returns the number of validated files, canonical included.
func (r *Report) FileCount() int {
	return len(r.Files)
}

// CanonicalLocale returns the loaded canonical locale.
func (r *Report) CanonicalLocale() *LocaleFile {
	for _, l := range r.Locales {
		if l.Name == r.Canonical {
			return l
		}
	}

	return nil
}

// Summary renders the human-readable success lines.
func (r *Report) Summary() string {
	return fmt.Sprintf("✓ Validated %d locale file(s)\n✓ All locales have %d keys matching canonical\n",
		r.FileCount(), r.Keys)
}

// Validate checks the locale files in dir.
func (v *Validator) Validate(ctx context.Context, dir string) (*Report, error) {
	return v.ValidateFS(ctx, os.DirFS(dir), dir)
}

// ValidateFS checks the locale files at the root of fsys. dir is only
// recorded in the report.
func (v *Validator) ValidateFS(ctx context.Context, fsys fs.FS, dir string) (*Report, error) {
	op := logging.StartOperation(v.logger.With("dir", dir), "validate")
	v.enter(PhaseIdle)

	report, err := v.run(ctx, fsys, dir)
	if err != nil {
		v.enter(PhaseFailed)
		op.EndWithError(ctx, err)

		return nil, err
	}

	v.enter(PhaseDone)
	op.End(ctx, "files", report.FileCount(), "keys", report.Keys)

	return report, nil
}

func (v *Validator) run(ctx context.Context, fsys fs.FS, dir string) (*Report, error) {
	v.enter(PhaseDiscovering)
	names, err := v.loader.Discover(fsys)
	if err != nil {
		return nil, err
	}

	v.enter(PhaseLoading)
	locales, err := v.loader.LoadAll(ctx, fsys, names)
	if err != nil {
		return nil, err
	}

	var canonical *LocaleFile
	for _, l := range locales {
		if l.Name == v.canonical {
			canonical = l
			break
		}
	}

	v.enter(PhaseComparing)
	for _, l := range locales {
		if l == canonical {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := Compare(canonical, l, v.canonical); err != nil {
			return nil, err
		}
		v.logger.Debug(ctx, "Locale matches canonical", "file", l.Name)
	}

	return &Report{
		Dir:       dir,
		Canonical: v.canonical,
		Files:     names,
		Keys:      canonical.Flattened.Len(),
		Locales:   locales,
	}, nil
}

func (v *Validator) enter(p Phase) {
	v.logger.Debug(context.Background(), "Validation phase", "phase", p.String())
	if v.onPhase != nil {
		v.onPhase(p)
	}
}
