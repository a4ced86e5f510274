package panel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formext/pkg/discovery"
	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/manifest"
	"github.com/goliatone/go-formext/pkg/module"
	"github.com/goliatone/go-formext/pkg/schema"
)

const (
	defaultID   = "admin"
	defaultPath = "admin"
)

// Option customises the Builder.
type Option func(*Builder)

// WithID sets the panel identifier.
func WithID(id string) Option {
	return func(b *Builder) {
		b.id = id
	}
}

// WithPath sets the URL path the panel is mounted under.
func WithPath(path string) Option {
	return func(b *Builder) {
		b.path = path
	}
}

// WithModules appends compiled modules. Registration follows the order in
// which modules were supplied.
func WithModules(modules ...module.Module) Option {
	return func(b *Builder) {
		for _, m := range modules {
			if m != nil {
				b.modules = append(b.modules, m)
			}
		}
	}
}

// WithManifestFS loads declarative manifests from fsys. Manifest modules are
// registered after compiled modules, sorted by file path.
func WithManifestFS(fsys fs.FS) Option {
	return func(b *Builder) {
		b.manifestFS = fsys
	}
}

// WithLogger sets the structured logger shared with the engines.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithEngineOptions forwards options to every engine the panel creates.
func WithEngineOptions(options ...extension.Option) Option {
	return func(b *Builder) {
		b.engineOptions = append(b.engineOptions, options...)
	}
}

// Builder assembles a Panel from modules.
type Builder struct {
	id            string
	path          string
	modules       []module.Module
	manifestFS    fs.FS
	logger        *slog.Logger
	engineOptions []extension.Option
}

// New constructs a Builder applying any provided options.
func New(options ...Option) *Builder {
	b := &Builder{
		id:     defaultID,
		path:   defaultPath,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build runs the registration phase and returns the frozen panel. Module
// names must be unique; the first registration failure aborts the build.
func (b *Builder) Build(ctx context.Context) (*Panel, error) {
	if ctx == nil {
		return nil, errors.New("panel: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	modules := append([]module.Module(nil), b.modules...)
	if b.manifestFS != nil {
		manifests, err := manifest.LoadFS(b.manifestFS)
		if err != nil {
			return nil, fmt.Errorf("panel: load manifests: %w", err)
		}
		for _, m := range manifests {
			modules = append(modules, m)
		}
	}

	set := extension.NewSet()
	seen := make(map[string]struct{}, len(modules))
	participants := make([]any, 0, len(modules))

	for _, m := range modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(m.Name())
		if name == "" {
			return nil, errors.New("panel: module name is required")
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("panel: module %q already registered", name)
		}
		seen[name] = struct{}{}

		if extender, ok := m.(module.Extender); ok {
			if err := extender.RegisterExtensions(set); err != nil {
				return nil, fmt.Errorf("panel: register module %q: %w", name, err)
			}
		}
		participants = append(participants, m)
		b.logger.Debug("module registered", "panel", b.id, "module", name)
	}

	set.Freeze()
	paths := discovery.Aggregate(participants...)

	engineOptions := append([]extension.Option{extension.WithLogger(b.logger)}, b.engineOptions...)
	p := &Panel{
		ID:         b.id,
		Path:       b.path,
		Modules:    modules,
		Extensions: set,
		Discovery:  paths,
		forms:      set.Forms(engineOptions...),
		tables:     set.Tables(engineOptions...),
		pages:      set.RecordPages(engineOptions...),
		navigation: set.SubNavigation(engineOptions...),
	}

	b.logger.Info("panel built", "panel", b.id, "modules", len(modules), "discovery_paths", paths.Len())
	return p, nil
}

// Panel is the read-only result of a build.
type Panel struct {
	ID         string
	Path       string
	Modules    []module.Module
	Extensions *extension.Set
	Discovery  discovery.Paths

	forms      *extension.Engine
	tables     *extension.Engine
	pages      *extension.PageEngine
	navigation *extension.NavigationEngine
}

// Form merges the form extensions registered for target into base.
func (p *Panel) Form(base []schema.Element, target string) ([]schema.Element, error) {
	return p.forms.Apply(base, target)
}

// Table merges the column extensions registered for target into base.
func (p *Panel) Table(base []schema.Element, target string) ([]schema.Element, error) {
	return p.tables.Apply(base, target)
}

// Pages merges the record pages registered for target into base.
func (p *Panel) Pages(base []extension.Page, target string) ([]extension.Page, error) {
	return p.pages.Apply(base, target)
}

// Navigation appends the sub-navigation items registered for target.
func (p *Panel) Navigation(base []extension.NavigationItem, target string) ([]extension.NavigationItem, error) {
	return p.navigation.Apply(base, target)
}

// Discover hands the aggregated discovery paths to scanner.
func (p *Panel) Discover(scanner discovery.Scanner) error {
	if err := discovery.Register(scanner, p.Discovery); err != nil {
		return fmt.Errorf("panel %q: %w", p.ID, err)
	}
	return nil
}
