package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"movielens/internal/core/genres"
	perr "movielens/internal/platform/errors"

	"golang.org/x/text/encoding/charmap"
)

// column names, matched case-insensitively
const (
	colMovieID    = "movieid"
	colTitle      = "title"
	colGenres     = "genres"
	colUserID     = "user_id"
	colItemID     = "item_id"
	colTimestamp  = "timestamp"
	colEventType  = "event_type"
	colEventValue = "event_value"
)

// table wraps a csv.Reader with a header index
type table struct {
	path string
	r    *csv.Reader
	cols map[string]int
}

func openTable(path string, src io.Reader, required ...string) (*table, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.DataLoadf("%s: empty file", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: read header", path)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	var missing []string
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, perr.DataLoadf("%s: missing required columns %s", path, strings.Join(missing, ", "))
	}
	return &table{path: path, r: r, cols: cols}, nil
}

// next returns the next record; io.EOF at the end
func (t *table) next() ([]string, int, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, io.EOF
		}
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s: malformed row", t.path)
	}
	line, _ := t.r.FieldPos(0)
	return rec, line, nil
}

// field returns the trimmed value of col, "" when the column is absent or the row is short
func (t *table) field(rec []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (t *table) int64Field(rec []string, col string, line int) (int64, error) {
	v := t.field(rec, col)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s:%d: invalid %s %q", t.path, line, col, v)
	}
	return n, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataLoad, "open %s", path)
	}
	return f, nil
}

func readMovies(path, enc string) (map[int64]MovieRecord, []int64, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if enc == EncodingLatin1 {
		src = charmap.ISO8859_1.NewDecoder().Reader(f)
	}

	t, err := openTable(path, src, colMovieID, colTitle, colGenres)
	if err != nil {
		return nil, nil, err
	}

	movies := make(map[int64]MovieRecord)
	ids := make([]int64, 0)
	for {
		rec, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		id, err := t.int64Field(rec, colMovieID, line)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := movies[id]; dup {
			return nil, nil, perr.DataLoadf("%s:%d: duplicate movieId %d", path, line, id)
		}
		movies[id] = MovieRecord{
			ItemID: id,
			Title:  t.field(rec, colTitle),
			Genres: genres.Split(t.field(rec, colGenres)),
		}
		ids = append(ids, id)
	}
	return movies, ids, nil
}

func readInteractions(path string) ([]InteractionRecord, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	t, err := openTable(path, f, colUserID, colItemID, colTimestamp)
	if err != nil {
		return nil, err
	}

	rows := make([]InteractionRecord, 0)
	for {
		rec, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		var r InteractionRecord
		if r.UserID, err = t.int64Field(rec, colUserID, line); err != nil {
			return nil, err
		}
		if r.ItemID, err = t.int64Field(rec, colItemID, line); err != nil {
			return nil, err
		}
		if r.Timestamp, err = t.int64Field(rec, colTimestamp, line); err != nil {
			return nil, err
		}
		r.EventType = t.field(rec, colEventType)
		if v := t.field(rec, colEventValue); v != "" {
			fv, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeDataLoad, "%s:%d: invalid %s %q", path, line, colEventValue, v)
			}
			r.EventValue = &fv
		}
		rows = append(rows, r)
	}
	return rows, nil
}
