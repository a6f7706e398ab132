// Package testkit provides testing helpers
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle. If not, writes haystack to testkit_output.txt for debugging
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		tmpfile := filepath.Join(t.TempDir(), "testkit_output.txt")
		_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
	}
}

// WriteFile writes content under dir/name and returns the full path
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// MovieLens describes a tiny dataset written by WriteMovieLens
type MovieLens struct {
	Dir              string
	MoviesPath       string
	InteractionsPath string
}

// DefaultMovies is a small catalog in the movies.csv layout (latin-1 safe)
const DefaultMovies = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,Grumpier Old Men (1995),Comedy|Romance
4,Waiting to Exhale (1995),Comedy|Drama|Romance
5,Father of the Bride Part II (1995),Comedy
6,Heat (1995),Action|Crime|Thriller
7,Sabrina (1995),Comedy|Romance
8,Tom and Huck (1995),Adventure|Children
9,Sudden Death (1995),Action
10,GoldenEye (1995),Action|Adventure|Thriller
`

// DefaultInteractions is a small interaction log in the interactions.csv layout
const DefaultInteractions = `USER_ID,ITEM_ID,TIMESTAMP,EVENT_TYPE,EVENT_VALUE
1,1,964982703,watch,4.0
1,3,964981247,watch,4.0
1,6,964982224,watch,4.0
1,1,964983000,watch,5.0
2,10,835355493,watch,3.0
2,9,835355681,watch,2.5
3,2,1306463595,watch,3.5
3,4,1306463619,watch,1.0
4,5,986935199,watch,4.0
5,7,847434962,watch,5.0
`

// WriteMovieLens writes movies.csv and interactions.csv into a fresh temp dir.
// Empty arguments fall back to DefaultMovies and DefaultInteractions
func WriteMovieLens(t *testing.T, movies, interactions string) MovieLens {
	t.Helper()
	if movies == "" {
		movies = DefaultMovies
	}
	if interactions == "" {
		interactions = DefaultInteractions
	}
	dir := t.TempDir()
	return MovieLens{
		Dir:              dir,
		MoviesPath:       WriteFile(t, dir, "movies.csv", []byte(movies)),
		InteractionsPath: WriteFile(t, dir, "interactions.csv", []byte(interactions)),
	}
}
