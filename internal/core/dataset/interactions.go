package dataset

import (
	"cmp"
	"slices"
	"time"

	perr "movielens/internal/platform/errors"
)

// InteractionsForUser returns the user's interactions, one row per item (first
// occurrence in file order wins), most recent first, enriched with title and genres.
// A user without interactions yields an empty slice and no error
func (s *Store) InteractionsForUser(userID int64) ([]UserInteraction, error) {
	const op = "dataset.InteractionsForUser"
	if err := s.requireInteractions(op); err != nil {
		return nil, err
	}
	if err := s.requireMovies(op); err != nil {
		return nil, err
	}

	idxs := s.byUser[userID]
	out := make([]UserInteraction, 0, len(idxs))
	seen := make(map[int64]struct{}, len(idxs))
	for _, i := range idxs {
		r := s.interactions[i]
		if _, dup := seen[r.ItemID]; dup {
			continue
		}
		seen[r.ItemID] = struct{}{}

		m, err := s.Movie(r.ItemID)
		if err != nil {
			return nil, perr.WithOp(err, op)
		}
		out = append(out, UserInteraction{
			ItemID:     r.ItemID,
			Title:      m.Title,
			Genres:     m.Genres,
			EventType:  r.EventType,
			EventValue: r.EventValue,
			Timestamp:  r.Timestamp,
			Time:       time.Unix(r.Timestamp, 0).UTC(),
		})
	}

	slices.SortStableFunc(out, func(a, b UserInteraction) int { return cmp.Compare(b.Timestamp, a.Timestamp) })
	return out, nil
}
