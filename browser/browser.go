// Package browser drives the rendering pipeline.
//
// A Browser owns a background worker goroutine running the whole
// chain for each navigation : fetch, parse, style, layout. The
// interactive side of an application stays free to request new
// navigations or a new viewport width at any time; requests are
// queued and collapsed, and a finished render whose navigation has
// been superseded meanwhile is discarded instead of published.
//
// Published pages are immutable : a resize or a new navigation
// always builds a fresh box tree, it never mutates the current one.
package browser

import (
	"fmt"
	"os"
	"sync"

	pr "github.com/go-galley/galley/css/properties"
	bo "github.com/go-galley/galley/html/boxes"
	"github.com/go-galley/galley/html/layout"
	"github.com/go-galley/galley/html/tree"
	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/text"
	"github.com/go-galley/galley/utils"
)

// Status is the stage the current navigation has reached.
type Status uint8

const (
	// StatusNone means no navigation has been requested yet.
	StatusNone Status = iota
	StatusFetching
	StatusParsing
	StatusStyling
	StatusLayout
	// StatusDone means the page for the current navigation is published.
	StatusDone
	// StatusFailed means the current navigation ended in an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusFetching:
		return "fetching"
	case StatusParsing:
		return "parsing"
	case StatusStyling:
		return "styling"
	case StatusLayout:
		return "layout"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Page is a rendered document, ready to be painted.
// It is never mutated after publication.
type Page struct {
	// Location is the URL the document was fetched from.
	Location string

	// Document is the parsed tree, with computed styles resolved.
	Document *tree.Document

	// Root is the laid out box tree.
	Root bo.Box

	// Width is the viewport width the layout was done for.
	Width pr.Fl
}

type renderRequest struct {
	location   string
	generation uint64
	width      pr.Fl

	// relayout asks for a new layout of the current page,
	// skipping fetch and style.
	relayout bool
}

type renderResult struct {
	generation uint64
	page       *Page
	err        error
}

// Browser runs the rendering pipeline in the background and
// publishes the resulting pages.
//
// All methods are safe for concurrent use.
type Browser struct {
	fonts   text.FontConfiguration
	fetcher utils.UrlFetcher

	// timingMode stops the worker after its first render,
	// so that one pipeline pass may be measured in isolation.
	timingMode bool

	requests       chan renderRequest
	results        chan renderResult
	layoutComplete chan struct{}

	mu         sync.RWMutex
	page       *Page
	status     Status
	generation uint64
	width      pr.Fl
}

// NewBrowser returns a browser rendering at the given viewport width,
// with its worker started. `fetcher` may be nil, in which case
// utils.DefaultUrlFetcher is used. Close releases the goroutines.
func NewBrowser(fetcher utils.UrlFetcher, fonts text.FontConfiguration, width pr.Fl) *Browser {
	b := &Browser{
		fonts:          fonts,
		fetcher:        fetcher,
		timingMode:     os.Getenv("GALLEY_TIMING_MODE") != "",
		requests:       make(chan renderRequest, 8),
		results:        make(chan renderResult, 1),
		layoutComplete: make(chan struct{}, 1),
		width:          width,
	}
	go b.work()
	go b.publish()
	return b
}

// Navigate starts rendering `location`, superseding any navigation
// still in flight : a superseded chain runs to completion but its
// result is discarded.
func (b *Browser) Navigate(location string) {
	b.mu.Lock()
	b.generation++
	b.status = StatusFetching
	req := renderRequest{location: location, generation: b.generation, width: b.width}
	b.mu.Unlock()
	b.requests <- req
}

// Resize requests a new layout of the current document at `width`,
// without fetching or styling again. A resize to the current width
// is a no-op.
func (b *Browser) Resize(width pr.Fl) {
	b.mu.Lock()
	if width == b.width {
		b.mu.Unlock()
		return
	}
	b.width = width
	b.generation++
	req := renderRequest{generation: b.generation, width: width, relayout: true}
	b.mu.Unlock()
	b.requests <- req
}

// CurrentPage returns the last published page, or nil if no
// navigation has completed yet.
func (b *Browser) CurrentPage() *Page {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.page
}

// Status returns the stage the current navigation has reached.
func (b *Browser) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// LayoutComplete signals each time a navigation settles, that is
// when a page is published or the navigation fails. Superseded
// renders do not signal.
func (b *Browser) LayoutComplete() <-chan struct{} {
	return b.layoutComplete
}

// Close shuts down the worker. Pending requests are dropped;
// Navigate and Resize must not be called afterwards.
func (b *Browser) Close() {
	close(b.requests)
}

// work runs the pipeline for each request, keeping only the newest
// when several are pending.
func (b *Browser) work() {
	defer close(b.results)
	for req := range b.requests {
	collapse:
		for {
			select {
			case next, ok := <-b.requests:
				if !ok {
					break collapse
				}
				req = next
			default:
				break collapse
			}
		}
		b.results <- b.render(req)
		if b.timingMode {
			return
		}
	}
}

// publish moves finished renders to the published page, unless a
// newer navigation was requested while they were being rendered.
func (b *Browser) publish() {
	for res := range b.results {
		b.mu.Lock()
		if res.generation != b.generation {
			b.mu.Unlock()
			logger.ProgressLogger.Printf("Discarding render for superseded navigation (generation %d)", res.generation)
			continue
		}
		if res.err != nil {
			b.status = StatusFailed
			logger.WarningLogger.Printf("Navigation failed : %s \n", res.err)
		} else if res.page == nil {
			// nothing to publish : a relayout was requested before
			// any page was rendered
			b.mu.Unlock()
			continue
		} else {
			b.page = res.page
			b.status = StatusDone
		}
		b.mu.Unlock()
		select {
		case b.layoutComplete <- struct{}{}:
		default:
		}
	}
}

// render runs the pipeline for one request. A panic in the chain
// only fails the navigation, not the whole application.
func (b *Browser) render(req renderRequest) (res renderResult) {
	res.generation = req.generation
	defer func() {
		if r := recover(); r != nil {
			res = renderResult{
				generation: req.generation,
				err:        fmt.Errorf("rendering %s : %v", req.location, r),
			}
		}
	}()

	if req.relayout {
		current := b.CurrentPage()
		if current == nil {
			logger.WarningLogger.Println("Resize requested but no document is rendered yet")
			return res
		}
		b.setStatus(req.generation, StatusLayout)
		root := layout.Layout(current.Document, b.fonts, req.width)
		res.page = &Page{Location: current.Location, Document: current.Document, Root: root, Width: req.width}
		return res
	}

	b.setStatus(req.generation, StatusFetching)
	content, err := utils.FetchSource(utils.InputUrl(req.location), "", b.fetcher, false)
	if err != nil {
		res.err = err
		return res
	}

	b.setStatus(req.generation, StatusParsing)
	parsedHTML, err := tree.NewHTML(utils.InputString(content.Content), content.BaseUrl, b.fetcher)
	if err != nil {
		res.err = err
		return res
	}

	b.setStatus(req.generation, StatusStyling)
	parsedHTML.GetAllComputedStyles()

	b.setStatus(req.generation, StatusLayout)
	root := layout.Layout(parsedHTML.Document, b.fonts, req.width)
	res.page = &Page{Location: req.location, Document: parsedHTML.Document, Root: root, Width: req.width}
	return res
}

// setStatus records the stage reached by `generation`, unless a newer
// navigation was requested since.
func (b *Browser) setStatus(generation uint64, status Status) {
	b.mu.Lock()
	if generation == b.generation {
		b.status = status
	}
	b.mu.Unlock()
}
