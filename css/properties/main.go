// Package properties defines the types needed to handle the CSS properties
// supported by the style resolver.
// There are 2 groups of types for a property, separated by the cascade step :
// a declared value is either a CSS-wide keyword or an already validated
// property; the computed value is always a [CssProperty].
package properties

import (
	"github.com/go-galley/galley/utils"
)

type Fl = utils.Fl

// DeclaredValue is the most general CSS input for a property,
// one of:
//   - the special "initial" or "inherit" keywords.
//   - a validated [CssProperty]
type DeclaredValue interface {
	isDeclaredValue()
}

func (DefaultValue) isDeclaredValue() {}

// CssProperty is the final form of a css input, a.k.a. the computed value.
// Default values have been resolved against the inherited or initial value.
type CssProperty interface {
	DeclaredValue

	isCssProperty()
}

type DefaultValue uint8

const (
	Inherit DefaultValue = iota + 1
	Initial
)

func NewDefaultValue(s string) DefaultValue {
	if s == "initial" {
		return Initial
	}
	return Inherit
}

func (d DefaultValue) String() string {
	switch d {
	case Inherit:
		return "<inherit>"
	case Initial:
		return "<initial>"
	default:
		return "invalid value"
	}
}

// KnownProp efficiently encode a known CSS property
type KnownProp uint8

func (p KnownProp) String() string { return propsNames[p] }

// Properties is a general container for computed properties.
//
// In addition to the generic access, an attempt to provide a "type safe" way
// is provided through the GetXXX and SetXXX methods. It relies on the
// convention than all the keys should be present, and values never be nil.
// Empty values are then encoded by the zero value of the concrete type.
type Properties map[KnownProp]CssProperty

// Copy return a shallow copy.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// UpdateWith merge the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// SetK is a set of known properties.
type SetK map[KnownProp]struct{}

func NewSetK(props ...KnownProp) SetK {
	out := make(SetK, len(props))
	for _, p := range props {
		out.Add(p)
	}
	return out
}

func (s SetK) Add(p KnownProp)      { s[p] = utils.Has }
func (s SetK) Has(p KnownProp) bool { _, has := s[p]; return has }

var _ StyleAccessor = Properties(nil)
