package text

import (
	"testing"

	pr "github.com/go-galley/galley/css/properties"
	tu "github.com/go-galley/galley/utils/testutils"
)

func TestSplitBreakableUnits(t *testing.T) {
	for _, test := range []struct {
		text string
		want []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"hello world", []string{"hello ", "world"}},
		{"hello  world", []string{"hello  ", "world"}},
		{"one two three", []string{"one ", "two ", "three"}},
		// ideographs may break between any two characters
		{"汉字文本", []string{"汉", "字", "文", "本"}},
		{"ab 汉字", []string{"ab ", "汉", "字"}},
	} {
		tu.AssertEqual(t, SplitBreakableUnits(test.text), test.want)
	}
}

func TestCanBreakText(t *testing.T) {
	for _, test := range []struct {
		text string
		want bool
	}{
		{"", false},
		{"a", false},
		{"ab", false},
		{"a b", true},
		{"汉字", true},
	} {
		tu.AssertEqual(t, CanBreakText([]rune(test.text)), test.want)
	}
}

func TestFixedEngine(t *testing.T) {
	fonts := FontConfigurationFixed{}
	font := FontDescription{Family: []string{"serif"}, Size: 16}

	tu.AssertEqual(t, fonts.TextWidth(font, ""), pr.Fl(0))
	tu.AssertEqual(t, fonts.TextWidth(font, "hello"), pr.Fl(40))
	tu.AssertEqual(t, fonts.TextWidth(font, "汉字"), pr.Fl(32))

	metrics := fonts.Metrics(font)
	tu.AssertEqual(t, metrics, FontMetrics{Ascent: 12, Descent: 4})
	tu.AssertEqual(t, metrics.LineHeight(), pr.Fl(16))
}

// with a font size of 16, the fixed engine advances
// by 8 for each latin letter or space
func TestSplitFirstLine(t *testing.T) {
	fonts := FontConfigurationFixed{}
	font := FontDescription{Family: []string{"serif"}, Size: 16}

	for _, test := range []struct {
		text     string
		maxWidth pr.Fl
		length   int
		resumeAt int
		width    pr.Fl
	}{
		// everything fits
		{"hello world", 100, 11, -1, 88},
		// break after the first word
		{"hello world", 80, 5, 6, 40},
		// the trailing spaces of a unit are not counted
		{"hello ", 40, 5, -1, 40},
		{"hello world", 44, 5, 6, 40},
		// ideographs fill the line character by character
		{"汉字文本", 40, 2, 2, 32},
		// an overlong unit at the start of a line fills it alone
		{"extraordinary word", 80, 13, 14, 104},
		{"extraordinary", 80, 13, -1, 104},
	} {
		got := SplitFirstLine(fonts, font, test.text, test.maxWidth, true)
		tu.AssertEqual(t, got.Length, test.length)
		tu.AssertEqual(t, got.ResumeAt, test.resumeAt)
		tu.AssertEqual(t, got.Width, test.width)
	}
}

func TestSplitFirstLineMetrics(t *testing.T) {
	fonts := FontConfigurationFixed{}
	font := FontDescription{Family: []string{"serif"}, Size: 16}

	split := SplitFirstLine(fonts, font, "hello", 100, true)
	tu.AssertEqual(t, split.Height, pr.Fl(16))
	tu.AssertEqual(t, split.Baseline, pr.Fl(12))
}

// in the middle of a line, an overlong unit is not placed :
// the caller must start a new line before retrying
func TestSplitFirstLineMidLine(t *testing.T) {
	fonts := FontConfigurationFixed{}
	font := FontDescription{Family: []string{"serif"}, Size: 16}

	got := SplitFirstLine(fonts, font, "extraordinary", 80, false)
	tu.AssertEqual(t, got.ResumeAt, 0)
	tu.AssertEqual(t, got.Length, 0)

	// a unit which fits is placed, line start or not
	got = SplitFirstLine(fonts, font, "word", 80, false)
	tu.AssertEqual(t, got.ResumeAt, -1)
	tu.AssertEqual(t, got.Length, 4)
}
