package properties

import (
	"fmt"

	pa "github.com/go-galley/galley/css/parser"
)

// ------------- Top levels types, implementing CssProperty ------------

type Strings []string

// Intersects returns true if at least one value in [values]
// is also in the list.
func (ss Strings) Intersects(values ...string) bool {
	for _, v1 := range ss {
		for _, v2 := range values {
			if v1 == v2 {
				return true
			}
		}
	}
	return false
}

// Display is the outer display mode of an element,
// one of "block", "inline" or "none".
type Display string

const (
	DBlock  Display = "block"
	DInline Display = "inline"
	DNone   Display = "none"
)

type Float Fl

type Int int

type String string

type Color pa.Color

// Unit is the unit of a [Dimension], a length
// unless it is [Scalar].
type Unit uint8

const (
	// Scalar means no unit, but a valid value
	Scalar Unit = iota + 1
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
)

func (u Unit) String() string {
	switch u {
	case Scalar:
		return ""
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	default:
		return "<invalid unit>"
	}
}

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Float
	Unit  Unit
}

func NewDim(v Float, u Unit) Dimension { return Dimension{Value: v, Unit: u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g%s>", d.Value, d.Unit)
}

// ToPixels resolves the length in CSS pixels.
// It should not be called on scalar dimensions.
func (d Dimension) ToPixels() Float { return d.Value * LengthsToPixels[d.Unit] }

func (d Dimension) ToValue() DimOrS { return DimOrS{Dimension: d} }

// DimOrS is a dimension or a keyword, such as "auto".
type DimOrS struct {
	S string
	Dimension
}

func (ds DimOrS) String() string {
	if ds.S != "" {
		return ds.S
	}
	return ds.Dimension.String()
}

// Value is an alias for DimOrS
type Value = DimOrS

func FToD(f Fl) Dimension { return Dimension{Value: Float(f), Unit: Px} }

func SToV(s string) DimOrS { return DimOrS{S: s} }

func FToV(f Fl) DimOrS { return FToD(f).ToValue() }

func (v Color) IsNone() bool {
	return v == Color{}
}

func (v Dimension) IsNone() bool {
	return v == Dimension{}
}

func (v DimOrS) IsNone() bool {
	return v == DimOrS{}
}

// method tags

func (Color) isCssProperty()   {}
func (Display) isCssProperty() {}
func (Float) isCssProperty()   {}
func (Int) isCssProperty()     {}
func (String) isCssProperty()  {}
func (Strings) isCssProperty() {}
func (DimOrS) isCssProperty()  {}

func (Color) isDeclaredValue()   {}
func (Display) isDeclaredValue() {}
func (Float) isDeclaredValue()   {}
func (Int) isDeclaredValue()     {}
func (String) isDeclaredValue()  {}
func (Strings) isDeclaredValue() {}
func (DimOrS) isDeclaredValue()  {}
