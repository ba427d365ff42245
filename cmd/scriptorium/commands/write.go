package commands

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/scriptorium/internal/config"
	"github.com/jmylchreest/scriptorium/internal/logger"
	"github.com/jmylchreest/scriptorium/internal/output"
)

// countingWriter tallies bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}

// writeSections serializes sections to stdout or the configured file.
func writeSections(cfg config.Output, sections []output.Section) error {
	var dst io.Writer = os.Stdout
	if cfg.Path != "" {
		f, err := os.Create(cfg.Path) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create output file", "path", cfg.Path, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		dst = f
	}

	counter := &countingWriter{w: dst}
	writer, err := output.NewWriter(counter, output.Format(cfg.Format), output.WithPretty(cfg.Pretty))
	if err != nil {
		logger.Error("failed to create output writer", "format", cfg.Format, "error", err)
		return err
	}

	if err := writer.WriteAll(sections); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}
	if err := writer.Close(); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}

	logger.Info("output written",
		"sections", len(sections),
		"format", cfg.Format,
		"size", humanize.Bytes(counter.n))
	return nil
}
