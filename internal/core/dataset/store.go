package dataset

import (
	"math/rand/v2"
	"slices"

	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
)

// Store owns the movie catalog and the interaction log. It is populated by the
// Load* calls and only read afterwards; it is not safe for concurrent loads
type Store struct {
	log       logger.Logger
	rng       *rand.Rand
	moviesEnc string

	moviesLoaded bool
	movies       map[int64]MovieRecord
	movieIDs     []int64 // catalog order

	interactionsLoaded bool
	interactions       []InteractionRecord
	userIDs            []int64         // distinct, first-seen order
	byUser             map[int64][]int // user -> row indexes in file order
}

// New constructs an empty Store; Load* must run before lookups or sampling
func New(opts ...Option) (*Store, error) {
	s := &Store{
		log:       *logger.Named("dataset"),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		moviesEnc: EncodingLatin1,
	}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load reads both tables, movies first
func (s *Store) Load(moviesPath, interactionsPath string) error {
	if err := s.LoadMovies(moviesPath); err != nil {
		return err
	}
	return s.LoadInteractions(interactionsPath)
}

// LoadMovies reads the movie catalog, replacing any previously loaded one
func (s *Store) LoadMovies(path string) error {
	s.log.Info().Str("path", path).Msg("loading movie data")
	movies, ids, err := readMovies(path, s.moviesEnc)
	if err != nil {
		return perr.WithOp(err, "dataset.LoadMovies")
	}
	s.movies, s.movieIDs, s.moviesLoaded = movies, ids, true
	s.log.Info().Int("movies", len(ids)).Msg("loaded movies")
	return nil
}

// LoadInteractions reads the interaction log, replacing any previously loaded one
func (s *Store) LoadInteractions(path string) error {
	s.log.Info().Str("path", path).Msg("loading interaction data")
	rows, err := readInteractions(path)
	if err != nil {
		return perr.WithOp(err, "dataset.LoadInteractions")
	}

	byUser := make(map[int64][]int)
	users := make([]int64, 0)
	for i, r := range rows {
		if _, seen := byUser[r.UserID]; !seen {
			users = append(users, r.UserID)
		}
		byUser[r.UserID] = append(byUser[r.UserID], i)
	}

	s.interactions, s.userIDs, s.byUser, s.interactionsLoaded = rows, users, byUser, true
	s.log.Info().Int("interactions", len(rows)).Int("users", len(users)).Msg("loaded interactions")
	return nil
}

func (s *Store) requireMovies(op string) error {
	if !s.moviesLoaded {
		return perr.WithOp(perr.Uninitializedf("movie catalog not loaded"), op)
	}
	return nil
}

func (s *Store) requireInteractions(op string) error {
	if !s.interactionsLoaded {
		return perr.WithOp(perr.Uninitializedf("interaction log not loaded"), op)
	}
	return nil
}

// Movie returns the catalog row for id
func (s *Store) Movie(id int64) (MovieRecord, error) {
	if err := s.requireMovies("dataset.Movie"); err != nil {
		return MovieRecord{}, err
	}
	m, ok := s.movies[id]
	if !ok {
		return MovieRecord{}, perr.WithField(perr.NotFoundf("movie %d not found", id), "item_id")
	}
	m.Genres = slices.Clone(m.Genres)
	return m, nil
}

// LookupMovie returns the title and genres for id
func (s *Store) LookupMovie(id int64) (string, []string, error) {
	m, err := s.Movie(id)
	if err != nil {
		return "", nil, err
	}
	return m.Title, m.Genres, nil
}

// MovieByString resolves a decimal item id as returned by the inference API
func (s *Store) MovieByString(id string) (MovieRecord, error) {
	n, err := ParseID(id)
	if err != nil {
		return MovieRecord{}, perr.WithField(err, "item_id")
	}
	return s.Movie(n)
}

// LookupMovieString is LookupMovie for a decimal string id
func (s *Store) LookupMovieString(id string) (string, []string, error) {
	m, err := s.MovieByString(id)
	if err != nil {
		return "", nil, err
	}
	return m.Title, m.Genres, nil
}

// MovieCount returns the catalog size (0 before LoadMovies)
func (s *Store) MovieCount() int { return len(s.movieIDs) }

// InteractionCount returns the number of interaction rows (0 before LoadInteractions)
func (s *Store) InteractionCount() int { return len(s.interactions) }

// UserCount returns the number of distinct users in the interaction log
func (s *Store) UserCount() int { return len(s.userIDs) }

// HasUser reports whether the interaction log mentions userID
func (s *Store) HasUser(userID int64) bool {
	_, ok := s.byUser[userID]
	return ok
}
