package manifest

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formext/pkg/schema"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from plain-text manifest values. The policy
// output is HTML-escaped, so entities are decoded back; escaping is left to
// whatever renders the text.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(trimmed)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeNode(node schema.Node) schema.Node {
	node.Label = sanitizeText(node.Label)
	node.Title = sanitizeText(node.Title)
	node.Description = sanitizeText(node.Description)
	node.Placeholder = sanitizeText(node.Placeholder)
	if len(node.Children) > 0 {
		children := make([]schema.Node, len(node.Children))
		for idx, child := range node.Children {
			children[idx] = sanitizeNode(child)
		}
		node.Children = children
	}
	return node
}
