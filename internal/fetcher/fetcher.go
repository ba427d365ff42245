// Package fetcher retrieves raw page markup.
// Implementations differ only in how the bytes are obtained; parsing is left
// to the caller.
package fetcher

import (
	"context"
	"fmt"
	"time"
)

// Fetch modes.
const (
	ModeStatic  = "static"
	ModeDynamic = "dynamic"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "dynamic".
	Type() string
}

// Options controls a single fetch.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// Content represents fetched page data.
type Content struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

const defaultUserAgent = "scriptorium/1.0 (+https://github.com/jmylchreest/scriptorium)"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	return c
}

// New creates a fetcher for the given mode.
func New(mode string, cfg Config) (Fetcher, error) {
	switch mode {
	case ModeStatic, "":
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewDynamic(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s (use 'static' or 'dynamic')", mode)
	}
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
