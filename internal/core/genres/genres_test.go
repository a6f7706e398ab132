package genres

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Action|Comedy", []string{"Action", "Comedy"}},
		{" Drama ", []string{"Drama"}},
		{"Action||Thriller|", []string{"Action", "Thriller"}},
		{"(no genres listed)", []string{"(no genres listed)"}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		if got := Split(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Split(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
	if got := Join([]string{"Action", "Comedy"}); got != "Action|Comedy" {
		t.Fatalf("Join = %q", got)
	}
}

func TestTopRaw_ActionFirst(t *testing.T) {
	got := TopRaw([]string{"Action|Comedy", "Action|Drama"}, 20)
	want := []Count{
		{Genre: "Action", Count: 2},
		{Genre: "Comedy", Count: 1},
		{Genre: "Drama", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopRaw = %#v, want %#v", got, want)
	}
}

func TestTop_TieBreakFirstSeen(t *testing.T) {
	lists := [][]string{
		{"Western", "Horror"},
		{"Comedy"},
		{"Horror", "Comedy", "Sci-Fi"},
	}
	got := Top(lists, 0)
	want := []Count{
		{Genre: "Horror", Count: 2},
		{Genre: "Comedy", Count: 2},
		{Genre: "Western", Count: 1},
		{Genre: "Sci-Fi", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Top = %#v, want %#v", got, want)
	}
}

func TestTop_Truncates(t *testing.T) {
	lists := [][]string{{"A", "B", "C", "D"}, {"D"}, {"C", "D"}}
	got := Top(lists, 2)
	if len(got) != 2 || got[0].Genre != "D" || got[0].Count != 3 || got[1].Genre != "C" {
		t.Fatalf("Top(2) = %#v", got)
	}
	if got := Names(got); !reflect.DeepEqual(got, []string{"D", "C"}) {
		t.Fatalf("Names = %#v", got)
	}
}

func TestTop_Empty(t *testing.T) {
	if got := Top(nil, 5); len(got) != 0 {
		t.Fatalf("Top(nil) = %#v, want empty", got)
	}
}

type row struct{ gs []string }

func (r row) GenreList() []string { return r.gs }

func TestTopOf(t *testing.T) {
	rows := []row{{gs: []string{"Comedy"}}, {gs: []string{"Comedy", "Romance"}}}
	got := TopOf(rows, 20)
	if len(got) != 2 || got[0] != (Count{Genre: "Comedy", Count: 2}) || got[1] != (Count{Genre: "Romance", Count: 1}) {
		t.Fatalf("TopOf = %#v", got)
	}
}

func TestDefaultTopN(t *testing.T) {
	var lists [][]string
	for i := 0; i < DefaultTopN+5; i++ {
		lists = append(lists, []string{string(rune('A' + i))})
	}
	if got := Top(lists, -1); len(got) != DefaultTopN {
		t.Fatalf("len(Top(-1)) = %d, want %d", len(got), DefaultTopN)
	}
}
