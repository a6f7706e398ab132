// Package domain holds the batch input job kinds, records and ports
package domain

import (
	"context"
	"strings"
	"sync"

	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/validate"
)

// JobKind is a batch inference job type
type JobKind string

// Supported job kinds
const (
	KindUserPersonalization JobKind = "user-personalization"
	KindSimilarItems        JobKind = "similar-items"
	KindPersonalizedRanking JobKind = "personalized-ranking"
)

// Defaults used when a request leaves a count at zero
const (
	DefaultNumRecords   = 50
	DefaultItemsPerRank = 20
	DefaultKeyPrefix    = "input/"
)

// Kinds lists the job kinds in display order
func Kinds() []JobKind {
	return []JobKind{KindUserPersonalization, KindSimilarItems, KindPersonalizedRanking}
}

// KindNames lists the job kinds as strings
func KindNames() []string {
	ks := Kinds()
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

// Valid reports whether k is one of Kinds
func (k JobKind) Valid() bool {
	for _, x := range Kinds() {
		if k == x {
			return true
		}
	}
	return false
}

func (k JobKind) String() string { return string(k) }

// ParseKind accepts a job kind name, case-insensitively
func ParseKind(s string) (JobKind, error) {
	k := JobKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", perr.WithField(perr.InvalidArgf("unknown job type %q (want one of %s)", s, strings.Join(KindNames(), ", ")), "job-type")
	}
	return k, nil
}

var registerOnce sync.Once

// RegisterValidation installs the jobkind validator tag
func RegisterValidation() {
	registerOnce.Do(func() {
		_ = validate.RegisterEnum("jobkind", KindNames()...)
	})
}

// Request asks for one batch input file. Zero counts fall back to the
// configured defaults; an empty OutputDir means the configured directory
type Request struct {
	Kind         JobKind
	NumRecords   int `name:"num-records" validate:"min=0"`
	ItemsPerRank int `name:"items-per-rank" validate:"min=0,max=500"`
	OutputDir    string
}

// Result describes a written (and possibly staged) batch input file
type Result struct {
	Kind     JobKind
	Path     string
	Filename string
	Records  int
	Bucket   string // set once staged
	Key      string // set once staged
}

// UserRecord is one user-personalization input line
type UserRecord struct {
	UserID string `json:"userId"`
}

// ItemRecord is one similar-items input line
type ItemRecord struct {
	ItemID string `json:"itemId"`
}

// RankRecord is one personalized-ranking input line
type RankRecord struct {
	UserID   string   `json:"userId"`
	ItemList []string `json:"itemList"`
}

// BuilderPort is the external port of the batchinput module
type BuilderPort interface {
	// Build samples records and writes the newline delimited JSON file
	Build(ctx context.Context, req Request) (Result, error)

	// Stage uploads a built file to <key prefix><filename> in bucket; an empty bucket is a no-op
	Stage(ctx context.Context, res Result, bucket string) (Result, error)
}
