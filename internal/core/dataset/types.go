// Package dataset loads the movie catalog and interaction log into memory and
// serves lookups, sampling and per-user interaction queries over them
package dataset

import (
	"strconv"
	"strings"
	"time"

	perr "movielens/internal/platform/errors"
)

// MovieRecord is one catalog row; ItemID is unique across the catalog
type MovieRecord struct {
	ItemID int64
	Title  string
	Genres []string
}

// GenreList satisfies genres.Lister
func (m MovieRecord) GenreList() []string { return m.Genres }

// InteractionRecord is one interaction log row. Duplicate (user, item) pairs are kept
type InteractionRecord struct {
	UserID     int64
	ItemID     int64
	Timestamp  int64 // unix seconds
	EventType  string
	EventValue *float64
}

// UserInteraction is an interaction enriched with catalog data
type UserInteraction struct {
	ItemID     int64
	Title      string
	Genres     []string
	EventType  string
	EventValue *float64
	Timestamp  int64
	Time       time.Time // UTC
}

// GenreList satisfies genres.Lister
func (u UserInteraction) GenreList() []string { return u.Genres }

// FormatID renders an identifier the way every outbound payload carries it
func FormatID(id int64) string { return strconv.FormatInt(id, 10) }

// ParseID parses a decimal identifier
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid identifier %q", s)
	}
	return id, nil
}

// ParseIDs parses a list of decimal identifiers, failing on the first bad one
func ParseIDs(xs []string) ([]int64, error) {
	out := make([]int64, 0, len(xs))
	for _, s := range xs {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// FormatIDs renders ids as strings
func FormatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = FormatID(id)
	}
	return out
}
