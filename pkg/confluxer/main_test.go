package confluxer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// firstRand always picks the first candidate.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

// seqRand returns the given picks in order, wrapping each into range.
type seqRand struct {
	picks []int
	i     int
}

func (r *seqRand) IntN(n int) int {
	v := r.picks[r.i%len(r.picks)] % n
	r.i++
	return v
}

// writeCorpus writes lines to a temporary corpus file and returns its path.
func writeCorpus(t testing.TB, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

// setupTrained builds a Confluxer from the given lines using opts.
func setupTrained(t testing.TB, lines []string, opts ...Option) *Confluxer {
	t.Helper()
	src := ReaderSource("test", strings.NewReader(strings.Join(lines, "\n")))
	c, err := NewFromSources(context.Background(), []Source{src}, opts...)
	if err != nil {
		t.Fatalf("setup: NewFromSources() failed: %v", err)
	}
	return c
}

// benchmarkCorpus is a short list of names used by the benchmarks.
var benchmarkCorpus = []string{
	"Agnieszka", "Aleksandra", "Alicja", "Anna", "Barbara", "Beata", "Danuta",
	"Dorota", "Elżbieta", "Ewa", "Grażyna", "Halina", "Irena", "Jadwiga",
	"Janina", "Joanna", "Justyna", "Katarzyna", "Krystyna", "Magdalena",
	"Małgorzata", "Maria", "Marianna", "Monika", "Natalia", "Paulina",
	"Stanisława", "Teresa", "Urszula", "Wiesława", "Zofia", "Łucja",
}
