package tree

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// TreeDump renders the document tree as an indented tree, used by the
// command line output and to inspect the parsed markup.
func TreeDump(doc *Document) string {
	printer := treeprint.New()
	dumpNode(printer, doc, 0)
	return printer.String()
}

func dumpNode(parent treeprint.Tree, doc *Document, id NodeID) {
	children := doc.Children(id)
	if len(children) == 0 {
		parent.AddNode(dumpLabel(doc.Get(id)))
		return
	}
	branch := parent.AddBranch(dumpLabel(doc.Get(id)))
	for _, child := range children {
		dumpNode(branch, doc, child)
	}
}

func dumpLabel(node *Node) string {
	switch node.Type {
	case NodeElement:
		var label strings.Builder
		label.WriteByte('<')
		label.WriteString(node.Data)
		for _, attr := range node.Attributes {
			if attr.Value == "" {
				fmt.Fprintf(&label, " %s", attr.Name)
			} else {
				fmt.Fprintf(&label, " %s=%q", attr.Name, attr.Value)
			}
		}
		label.WriteByte('>')
		return label.String()
	case NodeText:
		return fmt.Sprintf("%q", node.Data)
	case NodeComment:
		return fmt.Sprintf("<!--%s-->", node.Data)
	default:
		return "#document"
	}
}
