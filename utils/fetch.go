package utils

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ContentInput describes the origin of a document or stylesheet.
type ContentInput interface {
	isContentInput()
	String() string
}

type (
	InputFilename string
	InputUrl      string
	InputString   string
)

func (c InputFilename) isContentInput() {}
func (c InputUrl) isContentInput()      {}
func (c InputString) isContentInput()   {}

func (c InputFilename) String() string { return "file " + string(c) }
func (c InputUrl) String() string      { return "url " + string(c) }
func (c InputString) String() string   { return "string content" }

// RemoteRessource is a resource fetched by a UrlFetcher.
type RemoteRessource struct {
	Content []byte

	// MimeType is the content type declared by the source,
	// such as "text/html". It may be empty.
	MimeType string

	// BaseUrl is the URL the resource was actually fetched from,
	// used to resolve relative references found in the content.
	BaseUrl string
}

// UrlFetcher resolves an absolute URL to its content.
// Fetchers do not retry and do not follow redirects.
type UrlFetcher = func(url string) (RemoteRessource, error)

// DefaultUrlFetcher handles "file://" paths and "data:" URLs.
// Network schemes are left to the embedding application.
func DefaultUrlFetcher(urlTarget string) (RemoteRessource, error) {
	if strings.HasPrefix(urlTarget, "data:") {
		return parseDataURL(urlTarget)
	}
	u, err := url.Parse(urlTarget)
	if err != nil {
		return RemoteRessource{}, fmt.Errorf("invalid url %s : %s", urlTarget, err)
	}
	if u.Scheme != "file" {
		return RemoteRessource{}, fmt.Errorf("unsupported protocol %s (in %s)", u.Scheme, urlTarget)
	}
	content, err := os.ReadFile(u.Path)
	if err != nil {
		return RemoteRessource{}, err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(u.Path))
	if i := strings.IndexByte(mimeType, ';'); i != -1 {
		mimeType = mimeType[:i]
	}
	return RemoteRessource{Content: content, MimeType: mimeType, BaseUrl: urlTarget}, nil
}

// parseDataURL decodes a RFC 2397 data URL, with optional ";base64".
func parseDataURL(dataUrl string) (RemoteRessource, error) {
	rest := dataUrl[len("data:"):]
	comma := strings.IndexByte(rest, ',')
	if comma == -1 {
		return RemoteRessource{}, fmt.Errorf("invalid data url %s", dataUrl)
	}
	meta, payload := rest[:comma], rest[comma+1:]
	isBase64 := strings.HasSuffix(meta, ";base64")
	meta = strings.TrimSuffix(meta, ";base64")
	mimeType := meta
	if i := strings.IndexByte(mimeType, ';'); i != -1 {
		mimeType = mimeType[:i]
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}
	var content []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return RemoteRessource{}, fmt.Errorf("invalid data url payload : %s", err)
		}
		content = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return RemoteRessource{}, fmt.Errorf("invalid data url payload : %s", err)
		}
		content = []byte(unescaped)
	}
	return RemoteRessource{Content: content, MimeType: mimeType, BaseUrl: dataUrl}, nil
}

// FetchSource fetches a ContentInput through `fetcher`, which defaults
// to DefaultUrlFetcher. `checkMimeType` requires the declared content
// type to be a stylesheet one.
func FetchSource(input ContentInput, baseUrl string, fetcher UrlFetcher, checkMimeType bool) (RemoteRessource, error) {
	if fetcher == nil {
		fetcher = DefaultUrlFetcher
	}
	var (
		out RemoteRessource
		err error
	)
	switch input := input.(type) {
	case InputString:
		out = RemoteRessource{Content: []byte(input), BaseUrl: baseUrl}
	case InputFilename:
		target, errU := PathToURL(string(input))
		if errU != nil {
			return RemoteRessource{}, errU
		}
		out, err = fetcher(target)
	case InputUrl:
		target := string(input)
		if baseUrl != "" {
			target, err = JoinURL(baseUrl, target)
			if err != nil {
				return RemoteRessource{}, err
			}
		}
		out, err = fetcher(target)
	default:
		err = fmt.Errorf("unsupported input type %T", input)
	}
	if err != nil {
		return RemoteRessource{}, err
	}
	if checkMimeType && out.MimeType != "" && out.MimeType != "text/css" {
		return RemoteRessource{}, fmt.Errorf("unsupported stylesheet type %s (in %s)", out.MimeType, input)
	}
	return out, nil
}

// PathToURL returns a "file://" URL for the given path, which is made
// absolute first. Directories keep a trailing slash so they behave as
// bases for relative references.
func PathToURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if fi, errS := os.Stat(abs); errS == nil && fi.IsDir() && !strings.HasSuffix(abs, "/") {
		abs += "/"
	}
	return "file://" + abs, nil
}

// JoinURL resolves `ref` against the absolute URL `base`.
func JoinURL(base, ref string) (string, error) {
	if strings.HasPrefix(ref, "data:") {
		return ref, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %s : %s", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid url %s : %s", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
