package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/goliatone/go-formext/pkg/extension"
	"github.com/goliatone/go-formext/pkg/schema"
)

// Violation is a placement whose anchor does not resolve against the base
// schema of its target.
type Violation struct {
	Kind    extension.Kind
	Target  string
	Message string
}

// Lint merges every target that has a base schema with strict anchors and
// reports the first unresolved anchor of each. Targets without a base schema
// are skipped.
func Lint(ctx context.Context, manifests fs.FS, bases map[string][]schema.Element, logger *slog.Logger) ([]Violation, error) {
	p, err := BuildPanel(ctx, manifests, logger, extension.WithStrictAnchors(true))
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, kind := range []extension.Kind{extension.KindFields, extension.KindColumns} {
		for _, target := range Targets(p, kind) {
			base, ok := bases[target]
			if !ok {
				if logger != nil {
					logger.Debug("lint target skipped", "kind", kind, "target", target, "reason", "no base schema")
				}
				continue
			}
			_, err := Merge(p, base, target, kind)
			var anchorErr *extension.AnchorError
			switch {
			case err == nil:
			case errors.As(err, &anchorErr):
				violations = append(violations, Violation{Kind: kind, Target: target, Message: anchorErr.Error()})
			default:
				return nil, err
			}
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Target == violations[j].Target {
			return violations[i].Kind < violations[j].Kind
		}
		return violations[i].Target < violations[j].Target
	})
	return violations, nil
}
