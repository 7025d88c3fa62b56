// Command galley renders an HTML page and prints its layout tree.
//
// The page is fetched, styled and laid out at the requested viewport
// width; the resulting box tree, or the document tree with the -dom
// flag, is written to standard output.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fc "github.com/benoitkugler/textprocessing/fontconfig"
	"github.com/benoitkugler/textprocessing/pango/fcfonts"
	"github.com/go-galley/galley/backend"
	"github.com/go-galley/galley/browser"
	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/html/tree"
	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/text"
	"github.com/go-galley/galley/utils"
	"github.com/go-galley/galley/version"
)

func main() {
	width := flag.Int("width", 800, "viewport width in pixels")
	cache := flag.String("fontcache", "", "font cache file (default under the user cache directory)")
	dumpDOM := flag.Bool("dom", false, "print the document tree instead of the box tree")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: galley [flags] <url or file>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.VersionString)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	target, err := resolveTarget(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid target %s: %s\n", flag.Arg(0), err)
		os.Exit(1)
	}

	fonts, err := loadFonts(*cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fonts: %s\n", err)
		os.Exit(1)
	}

	b := browser.NewBrowser(nil, fonts, pr.Fl(*width))
	defer b.Close()

	b.Navigate(target)
	<-b.LayoutComplete()

	page := b.CurrentPage()
	if page == nil {
		fmt.Fprintf(os.Stderr, "Rendering failed (status %s)\n", b.Status())
		os.Exit(1)
	}
	if *dumpDOM {
		fmt.Print(tree.TreeDump(page.Document))
	} else {
		fmt.Print(backend.TreeDump(page.Root))
	}
}

// resolveTarget accepts an URL or a local file path.
func resolveTarget(arg string) (string, error) {
	if strings.Contains(arg, "://") || strings.HasPrefix(arg, "data:") {
		return arg, nil
	}
	return utils.PathToURL(arg)
}

// loadFonts builds the pango font configuration, scanning the system
// fonts on the first run and caching the result.
func loadFonts(cachePath string) (*text.FontConfigurationPango, error) {
	if cachePath == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		cachePath = filepath.Join(dir, "galley", "fonts.cache")
	}
	if _, err := os.Stat(cachePath); err != nil {
		logger.ProgressLogger.Println("Scanning fonts...")
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
			return nil, err
		}
		if _, err := fc.ScanAndCache(cachePath); err != nil {
			return nil, err
		}
	}
	fs, err := fc.LoadFontsetFile(cachePath)
	if err != nil {
		return nil, err
	}
	return text.NewFontConfigurationPango(fcfonts.NewFontMap(fc.Standard.Copy(), fs)), nil
}
