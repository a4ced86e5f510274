package extension

import (
	"fmt"
	"strings"
)

// NavigationItem is an entry of a record's sub-navigation.
type NavigationItem struct {
	Page  string `json:"page" yaml:"page"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// NavigationProvider yields the sub-navigation items a module contributes.
type NavigationProvider func() ([]NavigationItem, error)

// NavigationEngine appends registered navigation items to a base list. Each
// target keeps a single provider; see Set.ExtendNavigation.
type NavigationEngine struct {
	config
	registry *Registry[NavigationProvider]
}

// NewNavigationEngine returns an engine backed by registry.
func NewNavigationEngine(registry *Registry[NavigationProvider], options ...Option) *NavigationEngine {
	if registry == nil {
		registry = NewRegistry[NavigationProvider](KindNavigation)
	}
	return &NavigationEngine{config: newConfig(options...), registry: registry}
}

// Apply returns base followed by the items of the provider registered for
// target. The target must be named explicitly.
func (e *NavigationEngine) Apply(base []NavigationItem, target string) ([]NavigationItem, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("%w (%s)", ErrTargetRequired, KindNavigation)
	}

	merged := append([]NavigationItem(nil), base...)
	for idx, provider := range e.registry.ProvidersFor(target) {
		items, err := provider()
		if err != nil {
			e.logger.Error("navigation provider failed", "kind", KindNavigation, "target", target, "provider", idx, "error", err)
			return nil, &ProviderError{Kind: KindNavigation, Target: target, Index: idx, Err: err}
		}
		merged = append(merged, items...)
	}
	return merged, nil
}
