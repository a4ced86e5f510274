package extension

// Page maps a record page key (for example "index" or "edit") to the route
// and component that serve it. Pages without a key are positional and always
// appended.
type Page struct {
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Route     string `json:"route" yaml:"route"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
}

// PageProvider yields the pages a module adds to a resource.
type PageProvider func() ([]Page, error)

// PageEngine merges page providers into a resource's page map.
type PageEngine struct {
	config
	registry *Registry[PageProvider]
}

// NewPageEngine returns an engine backed by registry.
func NewPageEngine(registry *Registry[PageProvider], options ...Option) *PageEngine {
	if registry == nil {
		registry = NewRegistry[PageProvider](KindPages)
	}
	return &PageEngine{config: newConfig(options...), registry: registry}
}

// Apply merges every provider registered for target into base. A page whose
// key already exists replaces the earlier value in place; new keys and
// unkeyed pages are appended. base is never modified.
func (e *PageEngine) Apply(base []Page, target string) ([]Page, error) {
	merged := append([]Page(nil), base...)
	index := make(map[string]int, len(merged))
	for idx, page := range merged {
		if page.Key != "" {
			index[page.Key] = idx
		}
	}

	for idx, provider := range e.registry.ProvidersFor(target) {
		pages, err := provider()
		if err != nil {
			e.logger.Error("page provider failed", "kind", KindPages, "target", target, "provider", idx, "error", err)
			return nil, &ProviderError{Kind: KindPages, Target: target, Index: idx, Err: err}
		}
		for _, page := range pages {
			if page.Key != "" {
				if pos, ok := index[page.Key]; ok {
					merged[pos] = page
					continue
				}
				index[page.Key] = len(merged)
			}
			merged = append(merged, page)
		}
	}

	return merged, nil
}
