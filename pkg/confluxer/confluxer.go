package confluxer

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rand is the source of randomness used for generation. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed int in [0, n). n is always > 0.
	IntN(n int) int
}

// globalRand uses the package-level math/rand/v2 generator, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the source used when none is configured: the
// package-level math/rand/v2 generator, which is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// Confluxer is a trained order-2 character Markov chain. The transition table
// and start prefixes are built once by the constructor and never change after
// it returns.
type Confluxer struct {
	// mapping holds prefix -> continuations in corpus order, with duplicates kept.
	mapping map[string][]string
	// starts is kept in first-seen order so that sampling by index is well-defined.
	starts   []string
	startSet map[string]struct{}

	rng    Rand
	lang   language.Tag
	caser  cases.Caser
	logger *slog.Logger
}

// Option configures a Confluxer at construction time.
type Option func(*Confluxer)

// WithRand sets the random source used by Next. A source that is not safe for
// concurrent use, such as a bare *rand.Rand, makes Next unsafe for concurrent
// use too. In that case, use NextWith with one source per goroutine.
// Default: the package-level math/rand/v2 generator.
func WithRand(r Rand) Option {
	return func(c *Confluxer) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLanguage sets the language whose rules are used to lowercase the corpus.
// Default: language.Und
func WithLanguage(tag language.Tag) Option {
	return func(c *Confluxer) {
		c.lang = tag
	}
}

// WithLogger sets the logger for training and generation. By default, all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Confluxer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New trains a Confluxer from the given corpus files using default options.
// It fails with a *FileAccessError if any file cannot be opened or read.
func New(filenames ...string) (*Confluxer, error) {
	sources := make([]Source, 0, len(filenames))
	for _, filename := range filenames {
		sources = append(sources, FileSource(filename))
	}
	return NewFromSources(context.Background(), sources)
}

// NewFromSources trains a Confluxer from every source in order. If any source
// fails, construction is aborted and no Confluxer is returned.
func NewFromSources(ctx context.Context, sources []Source, opts ...Option) (*Confluxer, error) {
	c := &Confluxer{
		mapping:  make(map[string][]string),
		startSet: make(map[string]struct{}),
		rng:      DefaultRand(),
		lang:     language.Und,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.caser = cases.Lower(c.lang)

	if err := c.train(ctx, sources); err != nil {
		return nil, err
	}
	return c, nil
}
