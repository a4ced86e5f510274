package extension

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formext/internal/placement"
)

// Option customises an engine. Placement options only affect element
// engines; page and navigation engines honour the logger.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	nested    bool
	placement placement.Options
	strict    bool
}

func newConfig(options ...Option) config {
	cfg := config{logger: discardLogger()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the structured logger used to report provider failures and
// anchor fallbacks. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *config) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrictAnchors makes Apply fail with an *AnchorError when a placement
// names an anchor that matches nothing, instead of appending the element.
func WithStrictAnchors(strict bool) Option {
	return func(e *config) {
		e.strict = strict
	}
}

// WithNesting toggles descent into container children.
func WithNesting(nested bool) Option {
	return func(e *config) {
		e.nested = nested
	}
}

// WithFirstContainerFallback toggles whether unanchored placements land at the
// end of the first container (when nesting is enabled) rather than the root.
func WithFirstContainerFallback(enabled bool) Option {
	return func(e *config) {
		e.placement.FirstContainerFallback = enabled
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
