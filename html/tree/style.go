// This file takes care of steps 3 and 4 of the "CSS 2.1 processing
// model": retrieve stylesheets associated with a document and
// annotate every element with a value for every CSS property.
//
// http://www.w3.org/TR/CSS21/intro.html#processing-model

package tree

import (
	"strings"

	pa "github.com/go-galley/galley/css/parser"
	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/css/selector"
	"github.com/go-galley/galley/css/validation"
	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/utils"
	"golang.org/x/net/html/atom"
)

// sheet is a stylesheet ready to be applied, tagged with its origin.
type sheet struct {
	origin string
	sheet  CSS
}

// declarationPrecedence returns the cascading priority of a
// declaration, from its origin and importance; higher values win.
// See http://www.w3.org/TR/CSS21/cascade.html#cascading-order
func declarationPrecedence(origin string, importance bool) uint8 {
	switch {
	case origin == "user agent":
		return 1
	case origin == "author" && !importance:
		return 2
	case origin == "inline" && !importance:
		return 3
	case origin == "author": // and importance
		return 4
	default: // inline and importance
		return 5
	}
}

type weight struct {
	precedence  uint8
	specificity selector.Specificity
}

func (w weight) isNone() bool { return w == weight{} }

// Less returns whether w has a lower priority than other.
// On equal weights it returns true, so that the last declaration
// applied wins.
func (w weight) Less(other weight) bool {
	return w.precedence < other.precedence || (w.precedence == other.precedence &&
		(w.specificity.Less(other.specificity) || w.specificity == other.specificity))
}

type weigthedValue struct {
	value  pr.DeclaredValue
	weight weight
}

// cascadedStyle stores the winning declaration of each property,
// tagged with its weight in the cascade.
type cascadedStyle = map[pr.KnownProp]weigthedValue

// addDeclaration updates the cascaded style with a declared value,
// unless a declaration with a higher weight is already there.
func addDeclaration(style cascadedStyle, prop pr.KnownProp, value pr.DeclaredValue, we weight) {
	if oldWeight := style[prop].weight; oldWeight.isNone() || oldWeight.Less(we) {
		style[prop] = weigthedValue{value: value, weight: we}
	}
}

// element adapts a document node to the selector matching interface.
type element struct {
	doc *Document
	id  NodeID
}

func (e element) TagName() string { return e.doc.Get(e.id).Data }

func (e element) Attr(name string) (string, bool) { return e.doc.Get(e.id).Attr(name) }

func (e element) Parent() selector.Element {
	parent := e.doc.Get(e.id).parent
	if parent == -1 || e.doc.Get(parent).Type != NodeElement {
		return nil
	}
	return element{doc: e.doc, id: parent}
}

// linkHasType returns whether the space separated list `rel`
// contains `linkType`.
func linkHasType(rel, linkType string) bool {
	for _, v := range strings.Fields(utils.AsciiLower(rel)) {
		if v == linkType {
			return true
		}
	}
	return false
}

// findStylesheets fetches and parses the stylesheets attached to the
// document: <link rel=stylesheet> and <style> elements, in document
// order. A failing or invalid sheet is skipped with a warning.
func findStylesheets(doc *Document, baseUrl string, urlFetcher utils.UrlFetcher) []CSS {
	var out []CSS
	for id := NodeID(0); int(id) < doc.Len(); id++ {
		node := doc.Get(id)
		if node.Type != NodeElement {
			continue
		}
		switch node.DataAtom {
		case atom.Style:
			if mimeType, has := node.Attr("type"); has && mimeType != "" && utils.AsciiLower(mimeType) != "text/css" {
				logger.WarningLogger.Printf("Unsupported stylesheet type %s \n", mimeType)
				continue
			}
			content := doc.ChildrenText(id)
			css, err := NewCSS(utils.InputString(content), baseUrl, urlFetcher, false)
			if err != nil {
				logger.WarningLogger.Printf("Invalid style %s : %s \n", content, err)
				continue
			}
			out = append(out, css)
		case atom.Link:
			rel, _ := node.Attr("rel")
			href, _ := node.Attr("href")
			if href == "" || !linkHasType(rel, "stylesheet") || linkHasType(rel, "alternate") {
				continue
			}
			target, err := utils.JoinURL(baseUrl, href)
			if err != nil {
				logger.WarningLogger.Printf("Failed to load stylesheet at %s : %s \n", href, err)
				continue
			}
			css, err := NewCSS(utils.InputUrl(target), "", urlFetcher, true)
			if err != nil {
				logger.WarningLogger.Printf("Failed to load stylesheet at %s : %s \n", target, err)
				continue
			}
			out = append(out, css)
		}
	}
	return out
}

// GetAllComputedStyles resolves the computed style of every element
// of the document, as the result of the CSS cascade over the user
// agent stylesheet, the document stylesheets (in document order) and
// the inline "style" attributes.
// The resolved styles are stored on the document nodes.
func (h *HTML) GetAllComputedStyles() {
	sheets := []sheet{{origin: "user agent", sheet: h.UAStyleSheet}}
	for _, css := range findStylesheets(h.Document, h.BaseUrl, h.UrlFetcher) {
		sheets = append(sheets, sheet{origin: "author", sheet: css})
	}
	logger.ProgressLogger.Printf("Step 3 - Applying CSS - %d sheet(s)\n", len(sheets))

	doc := h.Document
	// Document order guarantees the parent style is resolved
	// before its children need it for inheritance.
	for id := NodeID(0); int(id) < doc.Len(); id++ {
		node := doc.Get(id)
		if node.Type != NodeElement {
			continue
		}

		style := cascadedStyle{}
		el := element{doc: doc, id: id}
		for _, sh := range sheets {
			for _, matched := range sh.sheet.matcher.Match(el) {
				for _, decl := range matched.payload {
					we := weight{
						precedence:  declarationPrecedence(sh.origin, decl.Important),
						specificity: matched.specificity,
					}
					addDeclaration(style, decl.Name, decl.Value, we)
				}
			}
		}
		if styleAttr, has := node.Attr("style"); has {
			declarations := validation.PreprocessDeclarations(h.BaseUrl,
				pa.ParseDeclarationListString(styleAttr, false, false))
			for _, decl := range declarations {
				we := weight{precedence: declarationPrecedence("inline", decl.Important)}
				addDeclaration(style, decl.Name, decl.Value, we)
			}
		}

		var parentStyle pr.Properties
		if p := node.parent; p != -1 && doc.Get(p).Type == NodeElement {
			parentStyle = doc.Get(p).Style
		}
		node.Style = computedFromCascaded(style, parentStyle)
	}
}

// computedFromCascaded resolves the cascaded declarations of one
// element against the inherited and initial values.
func computedFromCascaded(cascaded cascadedStyle, parentStyle pr.Properties) pr.Properties {
	computed := make(pr.Properties, len(pr.InitialValues))

	// "color" is resolved first: "currentColor" values refer to it
	computed[pr.PColor] = computedValue(cascaded, pr.PColor, parentStyle)
	for prop := range pr.InitialValues {
		if prop == pr.PColor {
			continue
		}
		value := computedValue(cascaded, prop, parentStyle)
		if color, ok := value.(pr.Color); ok && color.Type == pa.ColorCurrentColor {
			value = computed[pr.PColor]
		}
		computed[prop] = computedLength(value)
	}
	return computed
}

// AnonymousStyle returns the style of an anonymous box generated
// inside an element styled with `parent` : inherited properties are
// drawn from the parent, the others take their initial value.
func AnonymousStyle(parent pr.Properties) pr.Properties {
	return computedFromCascaded(nil, parent)
}

// computedLength normalizes declared lengths to CSS pixels, so that
// the layout stage never sees physical units.
func computedLength(value pr.CssProperty) pr.CssProperty {
	if dim, ok := value.(pr.DimOrS); ok && dim.S == "" && dim.Unit != pr.Px {
		return pr.FToV(pr.Fl(dim.ToPixels()))
	}
	return value
}

// computedValue resolves one property, falling back on the parent
// computed value for inherited properties, or on the initial value.
func computedValue(cascaded cascadedStyle, prop pr.KnownProp, parentStyle pr.Properties) pr.CssProperty {
	vw, declared := cascaded[prop]
	if !declared {
		if pr.Inherited.Has(prop) && parentStyle != nil {
			return parentStyle[prop]
		}
		return pr.InitialValues[prop]
	}
	switch value := vw.value.(type) {
	case pr.DefaultValue:
		if value == pr.Inherit && parentStyle != nil {
			return parentStyle[prop]
		}
		// "initial", or "inherit" on the root element
		return pr.InitialValues[prop]
	case pr.CssProperty:
		return value
	}
	return pr.InitialValues[prop]
}
