package phi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/scriptorium/internal/fetcher"
	"github.com/jmylchreest/scriptorium/internal/logger"
)

// Parse failures.
var (
	ErrEmptyDocument = errors.New("empty document")
	ErrNotMarkup     = errors.New("response is not markup")
)

// Layout holds the CSS selectors that locate content on a PHI page.
type Layout struct {
	TitleSelector string // headings; each match is one heading
	LineSelector  string // body line cells, concatenated in order
	PrevSelector  string // anchor carrying the previous page href
	NextSelector  string // anchor carrying the next page href
}

// DefaultLayout matches the markup served by latin.packhum.org.
func DefaultLayout() Layout {
	return Layout{
		TitleSelector: ".title",
		LineSelector:  "tr:not([class]) > td:first-of-type",
		PrevSelector:  "#prev",
		NextSelector:  "#next",
	}
}

func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.TitleSelector == "" {
		l.TitleSelector = d.TitleSelector
	}
	if l.LineSelector == "" {
		l.LineSelector = d.LineSelector
	}
	if l.PrevSelector == "" {
		l.PrevSelector = d.PrevSelector
	}
	if l.NextSelector == "" {
		l.NextSelector = d.NextSelector
	}
	return l
}

// Factory fetches PHI pages and builds Pages from them.
type Factory struct {
	fetcher fetcher.Fetcher
	layout  Layout
	opts    fetcher.Options
}

// NewFactory creates a Factory. Empty layout fields fall back to DefaultLayout.
func NewFactory(f fetcher.Fetcher, layout Layout, opts fetcher.Options) *Factory {
	return &Factory{
		fetcher: f,
		layout:  layout.withDefaults(),
		opts:    opts,
	}
}

// Create fetches pageURL and returns its Page. Fetch and parse failures are
// returned; a missing prev/next anchor only means the link is absent.
func (f *Factory) Create(ctx context.Context, pageURL string) (Page, error) {
	content, err := f.fetcher.Fetch(ctx, pageURL, f.opts)
	if err != nil {
		return Page{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	if ct := content.ContentType; ct != "" && !isMarkupType(ct) {
		return Page{}, fmt.Errorf("parse %s: %w (%s)", pageURL, ErrNotMarkup, ct)
	}

	page, err := ParseHTML(pageURL, content.HTML, f.layout)
	if err != nil {
		return Page{}, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return page, nil
}

// ParseHTML extracts a Page from the markup of the page at pageURL.
func ParseHTML(pageURL, html string, layout Layout) (Page, error) {
	if strings.TrimSpace(html) == "" {
		return Page{}, ErrEmptyDocument
	}

	base, err := siteRoot(pageURL)
	if err != nil {
		return Page{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{}, err
	}

	layout = layout.withDefaults()

	var headings []string
	doc.Find(layout.TitleSelector).Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})

	var body strings.Builder
	doc.Find(layout.LineSelector).Each(func(_ int, s *goquery.Selection) {
		body.WriteString(s.Text())
	})

	prev := resolveLink(doc, layout.PrevSelector, base)
	next := resolveLink(doc, layout.NextSelector, base)

	logger.Debug("phi page parsed",
		"url", pageURL,
		"headings", len(headings),
		"text_size", body.Len(),
		"prev", prev,
		"next", next)

	return NewPage(body.String(), headings, prev, next), nil
}

// siteRoot returns scheme://host/ of pageURL. Links on PHI pages are
// resolved against the site root rather than the page path.
func siteRoot(pageURL string) (*url.URL, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid page URL %q: not absolute", pageURL)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
}

// resolveLink returns the absolute href of the first match, or "" when the
// element, its href, or a usable value is missing.
func resolveLink(doc *goquery.Document, selector string, base *url.URL) string {
	href, exists := doc.Find(selector).First().Attr("href")
	href = strings.TrimSpace(href)
	if !exists || href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		logger.Debug("phi ignoring unparseable link", "selector", selector, "href", href, "error", err)
		return ""
	}
	return base.ResolveReference(ref).String()
}

func isMarkupType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "html") || strings.Contains(ct, "xml")
}
