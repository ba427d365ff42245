// Package crawler walks a chain of paginated pages by following next links.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmylchreest/scriptorium/internal/logger"
	"github.com/jmylchreest/scriptorium/internal/phi"
)

// ErrCycle marks a walk that stopped because a next link pointed back to a
// page already visited.
var ErrCycle = errors.New("pagination cycle detected")

// PageSource produces a page for a URL.
type PageSource interface {
	Create(ctx context.Context, url string) (phi.Page, error)
}

// Result holds what the walk keeps from one page.
type Result struct {
	URL       string    `json:"url" yaml:"url"`
	Headings  []string  `json:"headings" yaml:"headings"`
	Text      string    `json:"text" yaml:"text"`
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// Config holds walker configuration.
type Config struct {
	MaxPages     int           // Max pages to fetch (0 = unlimited)
	DetectCycles bool          // Stop when a next link revisits a page
	Delay        time.Duration // Delay between requests
}

// DefaultConfig returns sensible walker defaults.
func DefaultConfig() Config {
	return Config{
		MaxPages:     0, // unlimited
		DetectCycles: true,
	}
}

// Walker follows next links one page at a time.
type Walker struct {
	source PageSource
	config Config
}

// NewWalker creates a new Walker.
func NewWalker(source PageSource, cfg Config) *Walker {
	if cfg.MaxPages < 0 {
		cfg.MaxPages = 0
	}
	return &Walker{
		source: source,
		config: cfg,
	}
}

// Walk fetches seed and every page reachable through next links, in order.
// It stops when a page has no next link, when MaxPages is reached, or when
// cycle detection sees a repeat. Any fetch error aborts the walk; the pages
// gathered so far are discarded.
func (w *Walker) Walk(ctx context.Context, seed string) ([]Result, error) {
	log := logger.Component("crawler")
	log.Debug("walk starting",
		"seed", seed,
		"max_pages", w.config.MaxPages,
		"detect_cycles", w.config.DetectCycles,
		"delay", w.config.Delay)

	seen := newHistory()
	var results []Result

	current := seed
	for {
		if w.config.MaxPages > 0 && len(results) >= w.config.MaxPages {
			log.Info("reached max pages", "max_pages", w.config.MaxPages)
			break
		}

		if !seen.Visit(current) && w.config.DetectCycles {
			log.Warn("stopping walk", "url", current, "error", ErrCycle)
			break
		}

		if len(results) > 0 && w.config.Delay > 0 {
			if err := sleep(ctx, w.config.Delay); err != nil {
				return nil, err
			}
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		page, err := w.source.Create(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", len(results)+1, err)
		}

		results = append(results, Result{
			URL:       current,
			Headings:  page.Headings(),
			Text:      page.Text(),
			FetchedAt: start,
		})
		log.Info("page", "n", len(results), "url", current, "duration", time.Since(start).Round(time.Millisecond))

		next, ok := page.NextURL()
		if !ok {
			break
		}
		current = next
	}

	log.Debug("walk complete", "pages", len(results), "distinct_urls", seen.Len())
	return results, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
