package confluxer

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// initialOutputRunes bounds the output buffer reserved before the walk starts.
const initialOutputRunes = 64

// Next generates a string of up to length runes using the Confluxer's random
// source.
//
// If length <= 2, Next returns ok == false with no error, because a start
// prefix alone already supplies two runes. It returns ErrEmptyCorpus if
// training recorded no start prefixes. Otherwise ok is true. The result is
// shorter than length only when the chain reaches a prefix with no recorded
// continuation.
func (c *Confluxer) Next(length int) (string, bool, error) {
	return c.NextWith(c.rng, length)
}

// NextWith is Next with an explicit random source. Each goroutine can use its
// own source, and a nil r falls back to the Confluxer's source.
func (c *Confluxer) NextWith(r Rand, length int) (string, bool, error) {
	if length <= prefixLength {
		return "", false, nil
	}
	if len(c.starts) == 0 {
		return "", false, ErrEmptyCorpus
	}
	if r == nil {
		r = c.rng
	}

	start := c.starts[r.IntN(len(c.starts))]

	// The walk may dead-end long before length, so only a small buffer is reserved up front.
	var builder strings.Builder
	builder.Grow(min(length, initialOutputRunes) * utf8.UTFMax)
	builder.WriteString(start)

	// The trailing window is tracked as two runes instead of re-slicing the output.
	prev, size := utf8.DecodeRuneInString(start)
	last, _ := utf8.DecodeRuneInString(start[size:])

	var keyBuf []byte
	generated := prefixLength
	for remaining := length - prefixLength; remaining > 0; remaining-- {
		keyBuf = utf8.AppendRune(keyBuf[:0], prev)
		keyBuf = utf8.AppendRune(keyBuf, last)

		continuations, ok := c.mapping[string(keyBuf)]
		if !ok { // Dead end in chain
			c.logger.Debug("Generation terminated due to dead-end",
				slog.String("last_prefix", string(keyBuf)),
				slog.Int("generated_length", generated),
				slog.Int("requested_length", length),
			)
			break
		}

		next := continuations[r.IntN(len(continuations))]
		builder.WriteString(next)
		generated++

		nextRune, _ := utf8.DecodeRuneInString(next)
		prev, last = last, nextRune
	}

	return builder.String(), true, nil
}
