package main

import (
	"context"
	"testing"

	kit "movielens/internal/platform/testkit"
	recdom "movielens/internal/services/recommend/domain"
)

const testARN = "arn:aws:personalize:us-east-1:000000000000:campaign/demo"

// echoInference recommends a fixed list and ranks by reversing the input
type echoInference struct {
	items []string
	rec   recdom.RecommendInput
	rank  recdom.RankInput
}

func (e *echoInference) Recommend(_ context.Context, in recdom.RecommendInput) ([]recdom.ScoredItem, error) {
	e.rec = in
	out := make([]recdom.ScoredItem, 0, len(e.items))
	for _, id := range e.items {
		out = append(out, recdom.ScoredItem{ItemID: id})
	}
	return out, nil
}

func (e *echoInference) Rank(_ context.Context, in recdom.RankInput) ([]recdom.ScoredItem, error) {
	e.rank = in
	out := make([]recdom.ScoredItem, 0, len(in.ItemIDs))
	for i := len(in.ItemIDs) - 1; i >= 0; i-- {
		out = append(out, recdom.ScoredItem{ItemID: in.ItemIDs[i]})
	}
	return out, nil
}

// withFixture points the dataset at the test fixture and swaps the inference seam
func withFixture(t *testing.T, inf *echoInference) {
	t.Helper()
	kit.Serial(t)
	ml := kit.WriteMovieLens(t, "", "")
	t.Setenv("DATASET_MOVIES_PATH", ml.MoviesPath)
	t.Setenv("DATASET_INTERACTIONS_PATH", ml.InteractionsPath)
	t.Setenv("DATASET_MOVIES_ENCODING", "")
	t.Setenv("PERSONALIZE_NUM_RESULTS", "")
	t.Setenv("PERSONALIZE_RANK_ITEMS", "")
	t.Setenv("AWS_REGION", "")
	kit.Swap(t, &openInference, func(context.Context, string) (recdom.InferencePort, error) { return inf, nil })
}
