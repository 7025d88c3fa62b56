package boxes

import "fmt"

// SerBox is a light, comparable version of a box, used
// in tests and debug dumps.
type SerBox struct {
	Tag     string
	Type    BoxType
	Content BC
}

// BC is the content of a serialized box : the text of a run, or the
// children of a container.
type BC struct {
	Text string
	C    []SerBox
}

func (s SerBox) String() string {
	if s.Type == TextT {
		return fmt.Sprintf("{%s %s %q}", s.Tag, s.Type, s.Content.Text)
	}
	return fmt.Sprintf("{%s %s %v}", s.Tag, s.Type, s.Content.C)
}

// Serialize transforms a box list into an equivalent form suited for
// comparisons, keeping only the tag, type and content of each box.
func Serialize(boxList []Box) []SerBox {
	if len(boxList) == 0 {
		return nil
	}
	out := make([]SerBox, len(boxList))
	for i, box := range boxList {
		out[i].Tag = box.Box().ElementTag
		out[i].Type = box.Type()
		if text, ok := box.(*TextBox); ok {
			out[i].Content.Text = text.Text
		} else {
			out[i].Content.C = Serialize(box.Box().Children)
		}
	}
	return out
}
