package dataset

import (
	"slices"

	perr "movielens/internal/platform/errors"
)

// SampleUserIDs draws n distinct user ids uniformly without replacement from
// the users seen in the interaction log
func (s *Store) SampleUserIDs(n int) ([]int64, error) {
	if err := s.requireInteractions("dataset.SampleUserIDs"); err != nil {
		return nil, err
	}
	return s.sample(s.userIDs, n, "users")
}

// SampleItemIDs draws n distinct item ids uniformly without replacement from the catalog
func (s *Store) SampleItemIDs(n int) ([]int64, error) {
	if err := s.requireMovies("dataset.SampleItemIDs"); err != nil {
		return nil, err
	}
	return s.sample(s.movieIDs, n, "items")
}

// sample runs a partial Fisher-Yates shuffle over a copy of universe
func (s *Store) sample(universe []int64, n int, what string) ([]int64, error) {
	if n < 0 {
		return nil, perr.WithField(perr.InvalidArgf("sample size must be >= 0, got %d", n), "n")
	}
	if n > len(universe) {
		return nil, perr.InsufficientDataf("cannot sample %d %s, only %d available", n, what, len(universe))
	}
	pool := slices.Clone(universe)
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}
