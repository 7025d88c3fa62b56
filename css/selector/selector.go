// Package selector implements the subset of CSS selectors used by the
// style resolver: tag names, classes, ids, compound sequences and
// descendant combinators.
package selector

import "strings"

// Element is the read-only view of a document element required
// for selector matching.
type Element interface {
	// TagName returns the lowercase element name.
	TagName() string

	// Attr returns the value of the attribute `name` and
	// whether it is present.
	Attr(name string) (string, bool)

	// Parent returns the parent element, or nil at the tree root.
	Parent() Element
}

// Sel is a single parsed selector, able to match an element.
type Sel interface {
	// Match returns whether the element is matched by the selector.
	Match(el Element) bool

	// Specificity returns the ranking of this selector in the cascade.
	Specificity() Specificity
}

// SelectorGroup is a list of alternative selectors: it matches
// when at least one member matches.
type SelectorGroup []Sel

// Match returns true if any selector in the group matches the element.
func (g SelectorGroup) Match(el Element) bool {
	for _, s := range g {
		if s.Match(el) {
			return true
		}
	}
	return false
}

// matches elements by tag name, like "div"
type tagSelector struct {
	tag string
}

func (t tagSelector) Match(el Element) bool { return el.TagName() == t.tag }

func (t tagSelector) Specificity() Specificity { return Specificity{0, 1} }

// matches elements by class attribute, like ".intro"
type classSelector struct {
	class string
}

func (c classSelector) Match(el Element) bool {
	classes, ok := el.Attr("class")
	if !ok {
		return false
	}
	for _, name := range strings.Fields(classes) {
		if name == c.class {
			return true
		}
	}
	return false
}

func (c classSelector) Specificity() Specificity { return Specificity{1, 0} }

// matches elements by id attribute, like "#main"
type idSelector struct {
	id string
}

func (i idSelector) Match(el Element) bool {
	id, ok := el.Attr("id")
	return ok && id == i.id
}

func (i idSelector) Specificity() Specificity { return Specificity{1, 0} }

// matches any element
type universalSelector struct{}

func (universalSelector) Match(Element) bool { return true }

func (universalSelector) Specificity() Specificity { return Specificity{} }

// a sequence of simple selectors which must all match
// the same element, like "div.intro"
type compoundSelector struct {
	selectors []Sel
}

func (c compoundSelector) Match(el Element) bool {
	for _, s := range c.selectors {
		if !s.Match(el) {
			return false
		}
	}
	return true
}

func (c compoundSelector) Specificity() Specificity {
	var out Specificity
	for _, s := range c.selectors {
		out = out.add(s.Specificity())
	}
	return out
}

// matches an element against the leaf, then walks the ancestor
// chain looking for a match of the ancestor part
type descendantSelector struct {
	ancestor, leaf Sel
}

func (d descendantSelector) Match(el Element) bool {
	if !d.leaf.Match(el) {
		return false
	}
	for p := el.Parent(); p != nil; p = p.Parent() {
		if d.ancestor.Match(p) {
			return true
		}
	}
	return false
}

func (d descendantSelector) Specificity() Specificity {
	return d.ancestor.Specificity().add(d.leaf.Specificity())
}
