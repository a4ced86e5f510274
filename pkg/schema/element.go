package schema

// Element is a single schema node. ElementName returns the identifier used
// for before/after anchoring; an empty name can never be matched.
type Element interface {
	ElementName() string
}

// Container is an Element that owns an ordered sequence of child elements.
// WithChildren must return a new value and leave the receiver untouched.
type Container interface {
	Element
	Children() []Element
	WithChildren(children []Element) Container
}

// Cloner is implemented by elements that carry reference fields (maps,
// slices) and need a deep copy to keep merged schemas independent.
type Cloner interface {
	CloneElement() Element
}

// AsContainer reports whether element is a container.
func AsContainer(element Element) (Container, bool) {
	if element == nil {
		return nil, false
	}
	container, ok := element.(Container)
	return container, ok
}

// NameOf returns the element name, tolerating nil elements.
func NameOf(element Element) string {
	if element == nil {
		return ""
	}
	return element.ElementName()
}

// Names lists the names of the supplied elements in order. Unnamed elements
// yield an empty string so indexes stay aligned.
func Names(elements []Element) []string {
	if len(elements) == 0 {
		return nil
	}
	out := make([]string, len(elements))
	for idx, element := range elements {
		out[idx] = NameOf(element)
	}
	return out
}

// Find returns the first element named name, walking containers depth first
// in document order.
func Find(elements []Element, name string) (Element, bool) {
	if name == "" {
		return nil, false
	}
	for _, element := range elements {
		if NameOf(element) == name {
			return element, true
		}
		if container, ok := AsContainer(element); ok {
			if found, ok := Find(container.Children(), name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Clone copies the sequence together with every container's child sequence.
// Elements implementing Cloner are deep copied; other leaves are copied by
// value.
func Clone(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	for idx, element := range elements {
		out[idx] = cloneElement(element)
	}
	return out
}

func cloneElement(element Element) Element {
	if container, ok := AsContainer(element); ok {
		if cloner, ok := element.(Cloner); ok {
			element = cloner.CloneElement()
			container, _ = AsContainer(element)
		}
		if container == nil {
			return element
		}
		return container.WithChildren(Clone(container.Children()))
	}
	if cloner, ok := element.(Cloner); ok {
		return cloner.CloneElement()
	}
	return element
}
