package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"testing"

	"movielens/internal/core/dataset"
	perr "movielens/internal/platform/errors"
	kit "movielens/internal/platform/testkit"
	"movielens/internal/services/recommend/domain"
)

type fakeInference struct {
	items   []string
	err     error
	gotRec  domain.RecommendInput
	gotRank domain.RankInput
}

func (f *fakeInference) Recommend(_ context.Context, in domain.RecommendInput) ([]domain.ScoredItem, error) {
	f.gotRec = in
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.ScoredItem, 0, len(f.items))
	for i, id := range f.items {
		score := 1.0 / float64(i+1)
		out = append(out, domain.ScoredItem{ItemID: id, Score: &score})
	}
	return out, nil
}

// Rank reverses the input list
func (f *fakeInference) Rank(_ context.Context, in domain.RankInput) ([]domain.ScoredItem, error) {
	f.gotRank = in
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.ScoredItem, 0, len(in.ItemIDs))
	for i := len(in.ItemIDs) - 1; i >= 0; i-- {
		out = append(out, domain.ScoredItem{ItemID: in.ItemIDs[i]})
	}
	return out, nil
}

const arn = "arn:aws:personalize:us-east-1:000000000000:campaign/demo"

func newService(t *testing.T, inf domain.InferencePort) *Service {
	t.Helper()
	ml := kit.WriteMovieLens(t, "", "")
	data, err := dataset.New()
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	if err := data.Load(ml.MoviesPath, ml.InteractionsPath); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(data, inf, Config{})
}

func TestUserPersonalization(t *testing.T) {
	inf := &fakeInference{items: []string{"6", "10", "9"}}
	s := newService(t, inf)

	r, err := s.UserPersonalization(context.Background(), domain.UserQuery{CampaignARN: arn, UserID: 1})
	if err != nil {
		t.Fatalf("UserPersonalization: %v", err)
	}
	if inf.gotRec.UserID != "1" || inf.gotRec.ItemID != "" || inf.gotRec.NumResults != domain.DefaultNumResults {
		t.Fatalf("inference input = %+v", inf.gotRec)
	}
	if len(r.Interactions) != 3 {
		t.Fatalf("interactions = %d, want 3", len(r.Interactions))
	}
	if len(r.Recommendations) != 3 || r.Recommendations[0].Title != "Heat (1995)" || r.Recommendations[2].Rank != 3 {
		t.Fatalf("recommendations = %+v", r.Recommendations)
	}
	// Heat, GoldenEye and Sudden Death all carry Action
	if len(r.RecTopGenres) == 0 || r.RecTopGenres[0].Genre != "Action" || r.RecTopGenres[0].Count != 3 {
		t.Fatalf("rec top genres = %+v", r.RecTopGenres)
	}
	if len(r.TopGenres) == 0 || r.TopGenres[0].Genre != "Comedy" || r.TopGenres[0].Count != 2 {
		t.Fatalf("user top genres = %+v", r.TopGenres)
	}
}

func TestUserPersonalization_RandomUser(t *testing.T) {
	inf := &fakeInference{items: []string{"1"}}
	s := newService(t, inf)

	r, err := s.UserPersonalization(context.Background(), domain.UserQuery{CampaignARN: arn, NumResults: 5})
	if err != nil {
		t.Fatalf("UserPersonalization: %v", err)
	}
	if r.UserID < 1 || r.UserID > 5 {
		t.Fatalf("random user %d not in the interaction log", r.UserID)
	}
	if inf.gotRec.UserID != strconv.FormatInt(r.UserID, 10) || inf.gotRec.NumResults != 5 {
		t.Fatalf("inference input = %+v", inf.gotRec)
	}
}

func TestUserPersonalization_Errors(t *testing.T) {
	cases := []struct {
		name string
		inf  *fakeInference
		q    domain.UserQuery
		code perr.ErrorCode
	}{
		{"missing arn", &fakeInference{}, domain.UserQuery{UserID: 1}, perr.ErrorCodeValidation},
		{"too many results", &fakeInference{}, domain.UserQuery{CampaignARN: arn, UserID: 1, NumResults: 501}, perr.ErrorCodeValidation},
		{"runtime down", &fakeInference{err: perr.Unavailablef("throttled")}, domain.UserQuery{CampaignARN: arn, UserID: 1}, perr.ErrorCodeUnavailable},
		{"unknown recommended item", &fakeInference{items: []string{"6", "404"}}, domain.UserQuery{CampaignARN: arn, UserID: 1}, perr.ErrorCodeNotFound},
		{"non numeric item", &fakeInference{items: []string{"abc"}}, domain.UserQuery{CampaignARN: arn, UserID: 1}, perr.ErrorCodeInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newService(t, c.inf).UserPersonalization(context.Background(), c.q)
			if got := perr.CodeOf(err); got != c.code {
				t.Fatalf("code = %s, want %s (err=%v)", got, c.code, err)
			}
		})
	}
}

func TestSimilarItems(t *testing.T) {
	inf := &fakeInference{items: []string{"10", "9"}}
	s := newService(t, inf)

	r, err := s.SimilarItems(context.Background(), domain.ItemQuery{CampaignARN: arn, ItemID: 6, NumResults: 2})
	if err != nil {
		t.Fatalf("SimilarItems: %v", err)
	}
	if inf.gotRec.ItemID != "6" || inf.gotRec.UserID != "" || inf.gotRec.NumResults != 2 {
		t.Fatalf("inference input = %+v", inf.gotRec)
	}
	if r.Item.Title != "Heat (1995)" || len(r.Recommendations) != 2 || r.Recommendations[0].ItemID != 10 {
		t.Fatalf("report = %+v", r)
	}

	r, err = s.SimilarItems(context.Background(), domain.ItemQuery{CampaignARN: arn})
	if err != nil {
		t.Fatalf("random SimilarItems: %v", err)
	}
	if r.Item.ItemID < 1 || r.Item.ItemID > 10 {
		t.Fatalf("random item %d not in catalog", r.Item.ItemID)
	}

	_, err = s.SimilarItems(context.Background(), domain.ItemQuery{CampaignARN: arn, ItemID: 404})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("unknown item: %v", err)
	}
}

func TestRerank(t *testing.T) {
	inf := &fakeInference{}
	s := newService(t, inf)

	r, err := s.Rerank(context.Background(), domain.RankQuery{CampaignARN: arn, UserID: 2, ItemIDs: []int64{1, 6, 10}})
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if !slices.Equal(inf.gotRank.ItemIDs, []string{"1", "6", "10"}) || inf.gotRank.UserID != "2" {
		t.Fatalf("rank input = %+v", inf.gotRank)
	}
	var unranked, reranked []int64
	for _, x := range r.Unranked {
		unranked = append(unranked, x.ItemID)
	}
	for _, x := range r.Reranked {
		reranked = append(reranked, x.ItemID)
	}
	if !slices.Equal(unranked, []int64{1, 6, 10}) || !slices.Equal(reranked, []int64{10, 6, 1}) {
		t.Fatalf("unranked = %v reranked = %v", unranked, reranked)
	}
	if len(r.Interactions) != 2 || r.TopGenres[0].Genre != "Action" {
		t.Fatalf("user history = %+v %+v", r.Interactions, r.TopGenres)
	}
}

func TestRerank_RandomItems(t *testing.T) {
	inf := &fakeInference{}
	s := New(newService(t, inf).Data, inf, Config{RankItems: 4})

	r, err := s.Rerank(context.Background(), domain.RankQuery{CampaignARN: arn, UserID: 3})
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if len(r.Unranked) != 4 || len(inf.gotRank.ItemIDs) != 4 {
		t.Fatalf("expected 4 random items, got %d", len(r.Unranked))
	}

	// the default of 20 random items exceeds the 10 item catalog
	_, err = newService(t, inf).Rerank(context.Background(), domain.RankQuery{CampaignARN: arn, UserID: 3})
	if !perr.IsCode(err, perr.ErrorCodeInsufficientData) {
		t.Fatalf("want insufficient data, got %v", err)
	}

	_, err = s.Rerank(context.Background(), domain.RankQuery{CampaignARN: arn, UserID: 3, ItemIDs: []int64{1, 0}})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("zero item id: want validation, got %v", err)
	}

	inf.err = errors.New("boom")
	_, err = s.Rerank(context.Background(), domain.RankQuery{CampaignARN: arn, UserID: 3, ItemIDs: []int64{1}})
	if err == nil {
		t.Fatalf("runtime failure should propagate")
	}
}
