// Package domain holds the recommend demo types and ports
package domain

import (
	"movielens/internal/core/dataset"
	"movielens/internal/core/genres"
)

// Defaults mirrored by the commands
const (
	DefaultNumResults = 50
	DefaultRankItems  = 20
	MaxNumResults     = 500
)

// ScoredItem is one item returned by the inference runtime. Score is absent
// for campaigns that do not report one
type ScoredItem struct {
	ItemID string
	Score  *float64
}

// RecommendInput carries either UserID or ItemID as decimal strings
type RecommendInput struct {
	CampaignARN string
	UserID      string
	ItemID      string
	NumResults  int
}

// RankInput asks the runtime to rerank ItemIDs for UserID
type RankInput struct {
	CampaignARN string
	UserID      string
	ItemIDs     []string
}

// UserQuery drives the user personalization demo. UserID 0 picks a random user
type UserQuery struct {
	CampaignARN string `name:"campaign-arn" validate:"required"`
	UserID      int64  `name:"user-id" validate:"min=0"`
	NumResults  int    `name:"num-results" validate:"min=0,max=500"`
}

// ItemQuery drives the similar items demo. ItemID 0 picks a random item
type ItemQuery struct {
	CampaignARN string `name:"campaign-arn" validate:"required"`
	ItemID      int64  `name:"item-id" validate:"min=0"`
	NumResults  int    `name:"num-results" validate:"min=0,max=500"`
}

// RankQuery drives the personalized ranking demo. UserID 0 picks a random
// user; empty ItemIDs picks DefaultRankItems random items
type RankQuery struct {
	CampaignARN string  `name:"campaign-arn" validate:"required"`
	UserID      int64   `name:"user-id" validate:"min=0"`
	ItemIDs     []int64 `name:"item-ids" validate:"max=500,dive,min=1"`
}

// Recommendation is a scored item enriched from the catalog; Rank is 1-based
type Recommendation struct {
	Rank   int
	ItemID int64
	Title  string
	Genres []string
	Score  *float64
}

// GenreList satisfies genres.Lister
func (r Recommendation) GenreList() []string { return r.Genres }

// UserReport is the result of the user personalization demo
type UserReport struct {
	UserID          int64
	Interactions    []dataset.UserInteraction
	TopGenres       []genres.Count
	Recommendations []Recommendation
	RecTopGenres    []genres.Count
}

// ItemReport is the result of the similar items demo
type ItemReport struct {
	Item            dataset.MovieRecord
	Recommendations []Recommendation
}

// RankReport is the result of the personalized ranking demo
type RankReport struct {
	UserID       int64
	Unranked     []Recommendation
	Interactions []dataset.UserInteraction
	TopGenres    []genres.Count
	Reranked     []Recommendation
}
