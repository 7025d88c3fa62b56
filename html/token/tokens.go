// Package token implements a permissive tokenizer for HTML documents,
// decoding character references and handling raw text elements.
// Malformed markup never fails: it degrades to best-effort tokens.
package token

// Attribute is one name/value pair carried by a start tag.
// Names are ASCII lowercased.
type Attribute struct {
	Name, Value string
}

// Token is one unit of the markup stream.
//
// It is a sum type, with members [StartTag], [EndTag], [Text],
// [Comment] and [EOF].
type Token interface {
	isToken()
}

func (StartTag) isToken() {}
func (EndTag) isToken()   {}
func (Text) isToken()     {}
func (Comment) isToken()  {}
func (EOF) isToken()      {}

// StartTag opens an element, like <div id="header">.
type StartTag struct {
	Name string
	// Attributes preserves the source order. On duplicate
	// names, the first occurrence wins.
	Attributes []Attribute
	// SelfClosing is true when the tag ends with "/>".
	SelfClosing bool
}

// Attr returns the value of the attribute `name` and whether
// it is present.
func (t StartTag) Attr(name string) (string, bool) {
	return lookupAttr(t.Attributes, name)
}

// EndTag closes an element, like </div>. Attributes found on end
// tags are tolerated but discarded, and so is a self-closing slash.
type EndTag struct {
	Name string
}

// Text is a run of character data, with character references
// already decoded except inside raw text elements.
type Text struct {
	Content string
}

// Comment is the content of a <!-- --> section, kept verbatim.
type Comment struct {
	Content string
}

// EOF marks the end of the input. The tokenizer returns it
// forever once the input is exhausted.
type EOF struct{}
