package dataset

import (
	"math/rand/v2"

	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
)

// Encoding names accepted for the movie catalog
const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf-8"
)

// Option mutates Store during New
type Option func(*Store) error

// WithLogger sets the logger used for load reporting
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.log = log
		return nil
	}
}

// WithRand injects the random source used by the sampling operations
func WithRand(r *rand.Rand) Option {
	return func(s *Store) error {
		if r == nil {
			return perr.InvalidArgf("dataset: nil random source")
		}
		s.rng = r
		return nil
	}
}

// WithMoviesEncoding selects the movie catalog text encoding (latin1 or utf-8)
func WithMoviesEncoding(enc string) Option {
	return func(s *Store) error {
		switch enc {
		case EncodingLatin1, "latin-1", "iso-8859-1":
			s.moviesEnc = EncodingLatin1
		case EncodingUTF8, "utf8":
			s.moviesEnc = EncodingUTF8
		default:
			return perr.InvalidArgf("dataset: unsupported movies encoding %q", enc)
		}
		return nil
	}
}
