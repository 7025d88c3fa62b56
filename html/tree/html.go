package tree

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	pa "github.com/go-galley/galley/css/parser"
	"github.com/go-galley/galley/css/selector"
	"github.com/go-galley/galley/css/validation"
	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/utils"
)

// HTML represents an HTML document, fetched and parsed into a node
// tree, ready to be styled.
type HTML struct {
	Document *Document

	UrlFetcher utils.UrlFetcher
	BaseUrl    string

	UAStyleSheet CSS
}

// NewHTML fetches and parses the given HTML input.
//
// `baseUrl` is the base used to resolve relative URLs (e.g. in
// `<link href="style.css">`). If not provided, it is inferred from
// the input filename or the URL.
//
// `urlFetcher` is a function called to fetch external resources such
// as stylesheets, and defaults to utils.DefaultUrlFetcher.
func NewHTML(htmlContent utils.ContentInput, baseUrl string, urlFetcher utils.UrlFetcher) (*HTML, error) {
	logger.ProgressLogger.Println("Step 1 - Fetching and parsing HTML")
	return newHTML(htmlContent, baseUrl, urlFetcher)
}

func newHTML(htmlContent utils.ContentInput, baseUrl string, urlFetcher utils.UrlFetcher) (*HTML, error) {
	if urlFetcher == nil {
		urlFetcher = utils.DefaultUrlFetcher
	}
	result, err := utils.FetchSource(htmlContent, baseUrl, urlFetcher, false)
	if err != nil {
		return nil, fmt.Errorf("can't fetch html input : %s", err)
	}
	if baseUrl == "" {
		baseUrl = result.BaseUrl
	}
	return &HTML{
		Document:     Parse(string(result.Content)),
		UrlFetcher:   urlFetcher,
		BaseUrl:      baseUrl,
		UAStyleSheet: Ua,
	}, nil
}

// CSS represents a parsed stylesheet: an ordered list of rules,
// pairing a selector group with its validated declarations.
type CSS struct {
	baseUrl string
	matcher matcher
}

// NewCSS fetches and parses a stylesheet.
// The input can be a filename, an URL or a string content; when
// `checkMimeType` is true, fetched contents must declare a stylesheet
// content type.
func NewCSS(input utils.ContentInput, baseUrl string, urlFetcher utils.UrlFetcher, checkMimeType bool) (CSS, error) {
	logger.ProgressLogger.Printf("Step 2 - Fetching and parsing CSS - %s", input)
	res, err := utils.FetchSource(input, baseUrl, urlFetcher, checkMimeType)
	if err != nil {
		return CSS{}, err
	}
	return newCSS(res.Content, res.BaseUrl), nil
}

// NewCSSDefault processes a stylesheet with the default fetcher.
func NewCSSDefault(input utils.ContentInput) (CSS, error) {
	return NewCSS(input, "", nil, false)
}

// newCSS parses and validates the stylesheet rules. Invalid rules
// are skipped one by one, never aborting the whole sheet.
func newCSS(content []byte, baseUrl string) CSS {
	out := CSS{baseUrl: baseUrl}
	for _, rule := range pa.ParseStylesheetBytes(content, true, true) {
		switch rule := rule.(type) {
		case pa.QualifiedRule:
			prelude := pa.Serialize(rule.Prelude)
			group, err := selector.ParseGroup(prelude)
			if err != nil {
				logger.WarningLogger.Printf("Invalid or unsupported selector '%s', %s \n", prelude, err)
				continue
			}
			declarations := validation.PreprocessDeclarations(baseUrl, pa.ParseDeclarationList(rule.Content, false, false))
			if len(declarations) != 0 {
				out.matcher = append(out.matcher, match{selector: group, declarations: declarations})
			}
		case pa.AtRule:
			logger.WarningLogger.Printf("Ignored unsupported at-rule @%s. \n", rule.AtKeyword)
		case pa.ParseError:
			logger.WarningLogger.Printf("Error: %s \n", rule.Message)
		}
	}
	return out
}

// IsNone returns whether the stylesheet is empty.
func (c CSS) IsNone() bool { return c.baseUrl == "" && c.matcher == nil }

type match struct {
	selector     selector.SelectorGroup
	declarations []validation.Declaration
}

type matcher []match

type matchResult struct {
	specificity selector.Specificity
	payload     []validation.Declaration
}

// Match returns the declarations of the rules matching `element`, in
// rule order, tagged with the specificity of the selector that
// matched.
func (m matcher) Match(element selector.Element) (out []matchResult) {
	for _, mat := range m {
		for _, sel := range mat.selector {
			if sel.Match(element) {
				out = append(out, matchResult{specificity: sel.Specificity(), payload: mat.declarations})
			}
		}
	}
	return out
}

//go:embed ua.css
var uaCSS string

// Ua is the user agent stylesheet, shared by all documents.
var Ua CSS

func init() {
	// avoid unwanted logs when parsing the embedded stylesheet
	logger.ProgressLogger.SetOutput(io.Discard)
	defer logger.ProgressLogger.SetOutput(os.Stdout)

	var err error
	Ua, err = NewCSSDefault(utils.InputString(uaCSS))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded stylesheet: %s", err))
	}
}
