package domain

import "context"

// InferencePort is the hosted recommendation runtime
type InferencePort interface {
	// Recommend returns items for a user (user-personalization campaigns) or
	// for an item (similar-items campaigns), best first
	Recommend(ctx context.Context, in RecommendInput) ([]ScoredItem, error)

	// Rank reorders in.ItemIDs for in.UserID, best first
	Rank(ctx context.Context, in RankInput) ([]ScoredItem, error)
}

// DemoPort is the external port of the recommend module
type DemoPort interface {
	UserPersonalization(ctx context.Context, q UserQuery) (UserReport, error)
	SimilarItems(ctx context.Context, q ItemQuery) (ItemReport, error)
	Rerank(ctx context.Context, q RankQuery) (RankReport, error)
}
