package properties

func (s Properties) GetBackgroundColor() Color  { return s[PBackgroundColor].(Color) }
func (s Properties) SetBackgroundColor(v Color) { s[PBackgroundColor] = v }

func (s Properties) GetColor() Color  { return s[PColor].(Color) }
func (s Properties) SetColor(v Color) { s[PColor] = v }

func (s Properties) GetDisplay() Display  { return s[PDisplay].(Display) }
func (s Properties) SetDisplay(v Display) { s[PDisplay] = v }

func (s Properties) GetFontFamily() Strings  { return s[PFontFamily].(Strings) }
func (s Properties) SetFontFamily(v Strings) { s[PFontFamily] = v }

func (s Properties) GetFontSize() Value  { return s[PFontSize].(Value) }
func (s Properties) SetFontSize(v Value) { s[PFontSize] = v }

func (s Properties) GetFontStyle() String  { return s[PFontStyle].(String) }
func (s Properties) SetFontStyle(v String) { s[PFontStyle] = v }

func (s Properties) GetFontWeight() Int  { return s[PFontWeight].(Int) }
func (s Properties) SetFontWeight(v Int) { s[PFontWeight] = v }

func (s Properties) GetHeight() Value  { return s[PHeight].(Value) }
func (s Properties) SetHeight(v Value) { s[PHeight] = v }

func (s Properties) GetMarginBottom() Value  { return s[PMarginBottom].(Value) }
func (s Properties) SetMarginBottom(v Value) { s[PMarginBottom] = v }

func (s Properties) GetMarginLeft() Value  { return s[PMarginLeft].(Value) }
func (s Properties) SetMarginLeft(v Value) { s[PMarginLeft] = v }

func (s Properties) GetMarginRight() Value  { return s[PMarginRight].(Value) }
func (s Properties) SetMarginRight(v Value) { s[PMarginRight] = v }

func (s Properties) GetMarginTop() Value  { return s[PMarginTop].(Value) }
func (s Properties) SetMarginTop(v Value) { s[PMarginTop] = v }

func (s Properties) GetWidth() Value  { return s[PWidth].(Value) }
func (s Properties) SetWidth(v Value) { s[PWidth] = v }

type StyleAccessor interface {
	GetBackgroundColor() Color
	SetBackgroundColor(v Color)

	GetColor() Color
	SetColor(v Color)

	GetDisplay() Display
	SetDisplay(v Display)

	GetFontFamily() Strings
	SetFontFamily(v Strings)

	GetFontSize() Value
	SetFontSize(v Value)

	GetFontStyle() String
	SetFontStyle(v String)

	GetFontWeight() Int
	SetFontWeight(v Int)

	GetHeight() Value
	SetHeight(v Value)

	GetMarginBottom() Value
	SetMarginBottom(v Value)

	GetMarginLeft() Value
	SetMarginLeft(v Value)

	GetMarginRight() Value
	SetMarginRight(v Value)

	GetMarginTop() Value
	SetMarginTop(v Value)

	GetWidth() Value
	SetWidth(v Value)
}
