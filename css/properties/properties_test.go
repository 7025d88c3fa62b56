package properties

import (
	"math"
	"testing"

	tu "github.com/go-galley/galley/utils/testutils"
)

func TestNamesConsistency(t *testing.T) {
	for name, p := range PropsFromNames {
		tu.AssertEqual(t, p.String(), name)
	}
	tu.AssertEqual(t, len(PropsFromNames), len(propsNames)-1) // zero value is unused
}

func TestInitialValues(t *testing.T) {
	// every known property must have an initial value, with the
	// concrete type expected by its typed accessor
	tu.AssertEqual(t, len(InitialValues), len(PropsFromNames))
	for name := range PropsFromNames {
		if _, in := InitialValues[PropsFromNames[name]]; !in {
			t.Fatalf("missing initial value for %s", name)
		}
	}

	tu.AssertEqual(t, InitialValues.GetDisplay(), DInline)
	tu.AssertEqual(t, InitialValues.GetWidth(), SToV("auto"))
	tu.AssertEqual(t, InitialValues.GetMarginTop(), FToV(0))
	tu.AssertEqual(t, InitialValues.GetFontSize().Value, Float(16))
	tu.AssertEqual(t, InitialValues.GetFontWeight(), Int(400))
	tu.AssertEqual(t, InitialValues.GetColor().RGBA.A, Fl(1))
	tu.AssertEqual(t, InitialValues.GetBackgroundColor().RGBA.A, Fl(0))
}

func TestInheritedAreKnown(t *testing.T) {
	for p := range Inherited {
		if !KnownProperties.Has(p) {
			t.Fatalf("unknown inherited property %s", p)
		}
	}
	tu.AssertEqual(t, Inherited.Has(PColor), true)
	tu.AssertEqual(t, Inherited.Has(PFontSize), true)
	tu.AssertEqual(t, Inherited.Has(PWidth), false)
	tu.AssertEqual(t, Inherited.Has(PMarginLeft), false)
}

func TestCopyIsolation(t *testing.T) {
	style := InitialValues.Copy()
	style.SetDisplay(DBlock)
	style.SetFontSize(FToV(24))

	tu.AssertEqual(t, style.GetDisplay(), DBlock)
	tu.AssertEqual(t, InitialValues.GetDisplay(), DInline)
	tu.AssertEqual(t, InitialValues.GetFontSize(), FToV(16))

	other := InitialValues.Copy()
	other.UpdateWith(style)
	tu.AssertEqual(t, other.GetFontSize(), FToV(24))
}

func TestUnits(t *testing.T) {
	for _, test := range []struct {
		dim      Dimension
		expected Float
	}{
		{NewDim(10, Px), 10},
		{NewDim(12, Pt), 16},
		{NewDim(1, In), 96},
		{NewDim(2.54, Cm), 96},
		{NewDim(25.4, Mm), 96},
		{NewDim(1, Pc), 16},
	} {
		if got := test.dim.ToPixels(); math.Abs(float64(got-test.expected)) > 1e-4 {
			t.Fatalf("%s: expected %g px, got %g", test.dim, test.expected, got)
		}
	}
}
