package confluxer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// prefixLength is the order of the chain.
	prefixLength = 2
	// continuationLength is the number of runes recorded after each prefix.
	continuationLength = 1
)

// trainCounts collects per-run numbers for the completion log.
type trainCounts struct {
	linesProcessed int
	linesSkipped   int
}

// train runs every source through processLine. It is only called by the
// constructor, before the Confluxer is shared.
func (c *Confluxer) train(ctx context.Context, sources []Source) error {
	var counts trainCounts

	for _, src := range sources {
		err := src.Lines(ctx, func(line string) error {
			if c.processLine(line) {
				counts.linesProcessed++
			} else {
				counts.linesSkipped++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("training from '%s' failed: %w", src.Name(), err)
		}
	}

	stats := c.Stats()
	c.logger.InfoContext(ctx, "Training completed",
		slog.Int("sources", len(sources)),
		slog.Int("lines_processed", counts.linesProcessed),
		slog.Int("lines_skipped", counts.linesSkipped),
		slog.Int("prefixes", stats.Prefixes),
		slog.Int("transitions", stats.Transitions),
		slog.Int("start_prefixes", stats.StartPrefixes),
	)
	return nil
}

// processLine records every (prefix, next) observation in a single line and
// reports whether the line was long enough to contribute any.
func (c *Confluxer) processLine(line string) bool {
	folded := c.foldLine(line)

	windows := ProduceWindows(folded, prefixLength, continuationLength)
	for _, w := range windows {
		prefix, next := w.Segments[0], w.Segments[1]
		c.addTransition(prefix, next)
		if w.Index == 0 {
			c.addStartPrefix(prefix)
		}
	}
	return len(windows) > 0
}

// foldLine drops invalid UTF-8, trims surrounding whitespace and lowercases
// the line with full Unicode rules.
func (c *Confluxer) foldLine(line string) string {
	line = strings.ToValidUTF8(line, "")
	line = strings.TrimSpace(line)
	return c.caser.String(line)
}

func (c *Confluxer) addTransition(prefix, next string) {
	if len(next) == 0 {
		return
	}
	c.mapping[prefix] = append(c.mapping[prefix], next)
}

func (c *Confluxer) addStartPrefix(prefix string) {
	if _, ok := c.startSet[prefix]; ok {
		return
	}
	c.startSet[prefix] = struct{}{}
	c.starts = append(c.starts, prefix)
}
