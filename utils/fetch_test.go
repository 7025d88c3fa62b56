package utils

import (
	"strings"
	"testing"

	tu "github.com/go-galley/galley/utils/testutils"
)

func TestDataURL(t *testing.T) {
	res, err := DefaultUrlFetcher("data:text/html,<p>Hello</p>")
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, string(res.Content), "<p>Hello</p>")
	tu.AssertEqual(t, res.MimeType, "text/html")

	res, err = DefaultUrlFetcher("data:text/css;base64,cCB7IGNvbG9yOiByZWQgfQ==")
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, string(res.Content), "p { color: red }")
	tu.AssertEqual(t, res.MimeType, "text/css")

	res, err = DefaultUrlFetcher("data:,A%20brief%20note")
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, string(res.Content), "A brief note")
	tu.AssertEqual(t, res.MimeType, "text/plain")

	if _, err = DefaultUrlFetcher("data:text/html"); err == nil {
		t.Fatal("expected error for data url without comma")
	}
}

func TestDefaultFetcherUnsupported(t *testing.T) {
	for _, target := range []string{
		"http://example.com/",
		"https://example.com/style.css",
		"ftp://example.com/file",
	} {
		if _, err := DefaultUrlFetcher(target); err == nil {
			t.Fatalf("expected error for %s", target)
		}
	}
}

func TestFetchSource(t *testing.T) {
	res, err := FetchSource(InputString("<html></html>"), "file:///tmp/", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, string(res.Content), "<html></html>")
	tu.AssertEqual(t, res.BaseUrl, "file:///tmp/")

	fetcher := func(url string) (RemoteRessource, error) {
		return RemoteRessource{Content: []byte("p{}"), MimeType: "text/css", BaseUrl: url}, nil
	}
	res, err = FetchSource(InputUrl("sheet.css"), "file:///srv/doc/index.html", fetcher, true)
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, res.BaseUrl, "file:///srv/doc/sheet.css")

	badType := func(url string) (RemoteRessource, error) {
		return RemoteRessource{Content: []byte("<html>"), MimeType: "text/html", BaseUrl: url}, nil
	}
	if _, err = FetchSource(InputUrl("file:///srv/page.html"), "", badType, true); err == nil {
		t.Fatal("expected mime type error")
	}
}

func TestJoinURL(t *testing.T) {
	for _, test := range []struct {
		base, ref, exp string
	}{
		{"file:///srv/doc/index.html", "style.css", "file:///srv/doc/style.css"},
		{"file:///srv/doc/index.html", "../other.css", "file:///srv/other.css"},
		{"file:///srv/doc/", "sub/a.css", "file:///srv/doc/sub/a.css"},
		{"http://example.com/a/b.html", "/c.css", "http://example.com/c.css"},
		{"file:///srv/doc/index.html", "data:text/css,p{}", "data:text/css,p{}"},
		{"file:///srv/doc/index.html", "file:///abs.css", "file:///abs.css"},
	} {
		got, err := JoinURL(test.base, test.ref)
		if err != nil {
			t.Fatal(err)
		}
		tu.AssertEqual(t, got, test.exp)
	}
}

func TestPathToURL(t *testing.T) {
	got, err := PathToURL("/tmp")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Fatalf("unexpected url %s", got)
	}
	if !strings.HasSuffix(got, "/") {
		t.Fatalf("expected trailing slash for directory, got %s", got)
	}
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	s.Add("c")
	s.Extend([]string{"d"})
	for _, k := range []string{"a", "b", "c", "d"} {
		if !s.Has(k) {
			t.Fatalf("missing key %s", k)
		}
	}
	if s.Has("e") {
		t.Fatal("unexpected key e")
	}
	tu.AssertEqual(t, IsIn([]string{"x", "y"}, "y"), true)
	tu.AssertEqual(t, IsIn([]string{"x", "y"}, "z"), false)
}
