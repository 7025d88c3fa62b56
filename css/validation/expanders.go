package validation

import (
	"fmt"
	"strings"

	pr "github.com/go-galley/galley/css/properties"
)

type expander func(baseUrl, name string, tokens []Token) ([]namedProperty, error)

// expanders maps the name of a shorthand property to the function
// expanding it into its longhand components.
var expanders = map[string]expander{
	"margin": expandFourSides,
}

type namedProperty struct {
	name     pr.KnownProp
	property pr.DeclaredValue
}

// Expand properties setting a token for the four sides of a box,
// like "margin".
func expandFourSides(baseUrl, name string, tokens []Token) (out []namedProperty, err error) {
	// Define expanded names.
	indexM := strings.LastIndex(name, "-")
	var expandedNames [4]string
	for i, suffix := range [4]string{"-top", "-right", "-bottom", "-left"} {
		if indexM == -1 {
			expandedNames[i] = name + suffix
		} else {
			// eg. border-color becomes border-*-color, not border-color-*
			expandedNames[i] = name[:indexM] + suffix + name[indexM:]
		}
	}

	// Make sure we have 4 tokens
	if len(tokens) == 1 {
		tokens = []Token{tokens[0], tokens[0], tokens[0], tokens[0]}
	} else if len(tokens) == 2 {
		tokens = []Token{tokens[0], tokens[1], tokens[0], tokens[1]} // (bottom, left) defaults to (top, right)
	} else if len(tokens) == 3 {
		tokens = append(tokens, tokens[1]) // left defaults to right
	} else if len(tokens) != 4 {
		return nil, fmt.Errorf("expected 1 to 4 token components got %d", len(tokens))
	}

	for index, expandedName := range expandedNames {
		token := tokens[index]
		prop, err := validateNonShorthand(baseUrl, expandedName, []Token{token}, true)
		if err != nil {
			return nil, err
		}
		out = append(out, prop)
	}
	return out, nil
}
