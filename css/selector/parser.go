package selector

import (
	"errors"
	"fmt"

	pa "github.com/go-galley/galley/css/parser"
	"github.com/go-galley/galley/utils"
)

// ParseGroup parses a comma separated group of selectors.
func ParseGroup(s string) (SelectorGroup, error) {
	tokens := pa.Tokenize([]byte(s), true)
	var group SelectorGroup
	for _, part := range pa.SplitOnComma(tokens) {
		sel, err := parseComplex(part)
		if err != nil {
			return nil, err
		}
		group = append(group, sel)
	}
	return group, nil
}

// MustParseGroup is like [ParseGroup], but panics on error.
// It simplifies the initialization of global variables.
func MustParseGroup(s string) SelectorGroup {
	group, err := ParseGroup(s)
	if err != nil {
		panic(fmt.Sprintf("invalid selector group %q: %s", s, err))
	}
	return group
}

// parseComplex parses whitespace separated compounds, chaining
// them with the descendant combinator.
func parseComplex(tokens []pa.Token) (Sel, error) {
	var (
		out     Sel
		current []pa.Token
	)
	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		compound, err := parseCompound(current)
		if err != nil {
			return err
		}
		current = nil
		if out == nil {
			out = compound
		} else {
			out = descendantSelector{ancestor: out, leaf: compound}
		}
		return nil
	}
	for _, token := range tokens {
		if token.Kind() == pa.KWhitespace || token.Kind() == pa.KComment {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, token)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("empty selector")
	}
	return out, nil
}

// parseCompound parses a juxtaposition of simple selectors,
// already cleaned of whitespace.
func parseCompound(tokens []pa.Token) (Sel, error) {
	var parts []Sel
	for i := 0; i < len(tokens); i++ {
		switch token := tokens[i].(type) {
		case pa.Ident:
			// tag names are case-insensitive in HTML documents
			parts = append(parts, tagSelector{tag: utils.AsciiLower(token.Value)})
		case pa.Hash:
			if !token.IsIdentifier {
				return nil, fmt.Errorf("invalid id selector #%s", token.Value)
			}
			parts = append(parts, idSelector{id: token.Value})
		case pa.Literal:
			switch token.Value {
			case "*":
				parts = append(parts, universalSelector{})
			case ".":
				if i+1 < len(tokens) {
					if ident, ok := tokens[i+1].(pa.Ident); ok {
						parts = append(parts, classSelector{class: ident.Value})
						i++
						continue
					}
				}
				return nil, errors.New("expected a class name after '.'")
			default:
				return nil, fmt.Errorf("unsupported %q in selector", token.Value)
			}
		default:
			return nil, fmt.Errorf("unsupported %s token in selector", tokens[i].Kind())
		}
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return compoundSelector{selectors: parts}, nil
}
