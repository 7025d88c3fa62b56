package backend

import (
	"fmt"

	"github.com/xlab/treeprint"

	bo "github.com/go-galley/galley/html/boxes"
)

// TreeDump renders the laid out box tree as an indented tree, used by
// the command line output and to inspect layouts.
func TreeDump(box bo.Box) string {
	printer := treeprint.New()
	dump(printer, box)
	return printer.String()
}

func dump(parent treeprint.Tree, box bo.Box) {
	b := box.Box()
	if len(b.Children) == 0 {
		parent.AddNode(dumpLabel(box))
		return
	}
	branch := parent.AddBranch(dumpLabel(box))
	for _, child := range b.Children {
		dump(branch, child)
	}
}

func dumpLabel(box bo.Box) string {
	b := box.Box()
	label := fmt.Sprintf("%s %s (%g, %g) %gx%g",
		box.Type(), b.ElementTag, b.PositionX, b.PositionY, b.Width, b.Height)
	if run, ok := box.(*bo.TextBox); ok {
		label = fmt.Sprintf("%s %q", label, run.Text)
	}
	return label
}
