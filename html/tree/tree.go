// Package tree builds a document tree from an HTML token stream,
// and resolves the computed style of its elements by applying the
// CSS cascade, from the user agent, document and inline stylesheets.
package tree

import (
	"strings"

	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/html/token"
	"github.com/go-galley/galley/logger"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
)

// NodeID identifies a node inside its Document.
type NodeID int32

// NodeType defines the kind of a document node.
type NodeType uint8

const (
	NodeDocument NodeType = iota // the tree root
	NodeElement
	NodeText
	NodeComment
)

// Node is one node of a Document. Nodes are owned by the document
// arena and refer to their relatives by index.
type Node struct {
	// Data is the tag name for elements, or the content for
	// text and comment nodes.
	Data string

	Attributes []token.Attribute

	// Style is the computed style of an element,
	// filled by [HTML.GetAllComputedStyles].
	Style pr.Properties

	children []NodeID
	parent   NodeID

	// DataAtom is the interned tag name, or zero for
	// tags outside the standard set.
	DataAtom atom.Atom

	Type NodeType
}

// Attr returns the value of the attribute `name`, which must be
// lower-cased, and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Document is an arena of nodes; the root, with type [NodeDocument],
// is the node 0. Node indices follow document order, so that a loop
// over [0, Len()) always visits parents before children.
type Document struct {
	nodes []Node
}

// Len returns the number of nodes, including the root.
func (d *Document) Len() int { return len(d.nodes) }

// Get returns a pointer to the node `id`, valid until the
// document is mutated.
func (d *Document) Get(id NodeID) *Node { return &d.nodes[id] }

// Children returns the node indices of the children of `id`.
func (d *Document) Children(id NodeID) []NodeID { return d.nodes[id].children }

// Parent returns the parent of `id`, or -1 for the root.
func (d *Document) Parent(id NodeID) NodeID { return d.nodes[id].parent }

// ChildrenText returns the concatenated content of the direct text
// children of `id`, used for instance for <style> bodies.
func (d *Document) ChildrenText(id NodeID) string {
	var content strings.Builder
	for _, c := range d.nodes[id].children {
		if child := &d.nodes[c]; child.Type == NodeText {
			content.WriteString(child.Data)
		}
	}
	return content.String()
}

// Lang returns the canonicalized BCP 47 language of the document,
// read from the root <html lang=...> attribute, or the empty
// string if absent or invalid.
func (d *Document) Lang() string {
	for _, c := range d.nodes[0].children {
		node := &d.nodes[c]
		if node.Type != NodeElement || node.DataAtom != atom.Html {
			continue
		}
		if lang, has := node.Attr("lang"); has && lang != "" {
			tag, err := language.Parse(lang)
			if err != nil {
				logger.WarningLogger.Printf("Invalid lang attribute %s : %s \n", lang, err)
				return ""
			}
			return tag.String()
		}
	}
	return ""
}

// append adds `node` to the arena, under `parent`.
func (d *Document) append(parent NodeID, node Node) NodeID {
	id := NodeID(len(d.nodes))
	node.parent = parent
	d.nodes = append(d.nodes, node)
	d.nodes[parent].children = append(d.nodes[parent].children, id)
	return id
}

// appendText adds a text node under `parent`, merging it with an
// immediately preceding text child.
func (d *Document) appendText(parent NodeID, content string) {
	if content == "" {
		return
	}
	children := d.nodes[parent].children
	if len(children) != 0 {
		if last := &d.nodes[children[len(children)-1]]; last.Type == NodeText {
			last.Data += content
			return
		}
	}
	d.append(parent, Node{Type: NodeText, Data: content})
}

// voidElements never have content: they are inserted in the tree
// but not pushed on the open element stack.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

func isVoid(tag atom.Atom, name string) bool {
	if voidElements[tag] {
		return true
	}
	// declarations such as <!doctype html> have no matching end tag
	return strings.HasPrefix(name, "!") || strings.HasPrefix(name, "?")
}

// implicitClose lists the tags closed by the insertion of a new
// element, such as an <li> ending the previous list item. Entries are
// checked in order against the end of the open element stack, and
// each may fire once: a new <tr> first closes a pending cell, then
// the row itself.
var implicitClose = [...]struct {
	openers []atom.Atom // tags triggering the rule ...
	closes  []atom.Atom // ... when the open elements end with these
}{
	{[]atom.Atom{atom.P, atom.Table, atom.Form, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}, []atom.Atom{atom.P}},
	{[]atom.Atom{atom.Li}, []atom.Atom{atom.Li}},
	{[]atom.Atom{atom.Dt, atom.Dd}, []atom.Atom{atom.Dt}},
	{[]atom.Atom{atom.Dt, atom.Dd}, []atom.Atom{atom.Dd}},
	{[]atom.Atom{atom.Tr}, []atom.Atom{atom.Tr}},
	{[]atom.Atom{atom.Tr}, []atom.Atom{atom.Tr, atom.Td}},
	{[]atom.Atom{atom.Tr}, []atom.Atom{atom.Tr, atom.Th}},
	{[]atom.Atom{atom.Td, atom.Th}, []atom.Atom{atom.Td}},
	{[]atom.Atom{atom.Td, atom.Th}, []atom.Atom{atom.Th}},
}

func hasAtom(l []atom.Atom, a atom.Atom) bool {
	for _, v := range l {
		if v == a {
			return true
		}
	}
	return false
}

// openElement is one entry of the open element stack. The name is
// kept alongside the atom to match end tags outside the standard set.
type openElement struct {
	name string
	id   NodeID
	tag  atom.Atom
}

// endsWith returns whether the tags of the open elements end with
// `suffix`. The document entry at the bottom of the stack never
// matches.
func endsWith(stack []openElement, suffix []atom.Atom) bool {
	if len(stack)-1 < len(suffix) {
		return false
	}
	for i, a := range suffix {
		if stack[len(stack)-len(suffix)+i].tag != a {
			return false
		}
	}
	return true
}

// Parse builds the document tree for `input`, recovering from
// malformed markup: unclosed elements are ended by their parent (or
// the end of input), and stray end tags are dropped with a warning.
func Parse(input string) *Document {
	doc := &Document{nodes: []Node{{Type: NodeDocument, parent: -1}}}
	stack := []openElement{{id: 0}} // the document root
	tokenizer := token.NewTokenizer(input)
	for {
		switch t := tokenizer.Next().(type) {
		case token.StartTag:
			tag := atom.Lookup([]byte(t.Name))
			for _, rule := range implicitClose {
				if hasAtom(rule.openers, tag) && endsWith(stack, rule.closes) {
					stack = stack[:len(stack)-len(rule.closes)]
				}
			}
			id := doc.append(stack[len(stack)-1].id, Node{
				Type: NodeElement, Data: t.Name, DataAtom: tag, Attributes: t.Attributes,
			})
			if !t.SelfClosing && !isVoid(tag, t.Name) {
				stack = append(stack, openElement{id: id, tag: tag, name: t.Name})
			}
		case token.EndTag:
			// pop up to the matching element; names are already lower-cased
			found := false
			for i := len(stack) - 1; i >= 1; i-- {
				if stack[i].name == t.Name {
					stack = stack[:i]
					found = true
					break
				}
			}
			if !found {
				logger.WarningLogger.Printf("No matching start tag for </%s>, ignored \n", t.Name)
			}
		case token.Text:
			doc.appendText(stack[len(stack)-1].id, t.Content)
		case token.Comment:
			doc.append(stack[len(stack)-1].id, Node{Type: NodeComment, Data: t.Content})
		case token.EOF:
			// still open elements are ended by the end of input
			return doc
		}
	}
}
