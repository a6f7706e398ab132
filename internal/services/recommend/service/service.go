// Package service implements the recommend demos on top of the dataset store
// and the inference runtime
package service

import (
	"context"

	"movielens/internal/core/dataset"
	"movielens/internal/core/genres"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
	"movielens/internal/platform/validate"
	"movielens/internal/services/recommend/domain"
)

// Config for the recommend service
type Config struct {
	NumResults int // default for queries that leave it 0
	RankItems  int // random items drawn when a rank query has none
}

// Service implements domain.DemoPort
type Service struct {
	Data      *dataset.Store
	Inference domain.InferencePort
	Cfg       Config
}

// New constructs a recommend service
func New(data *dataset.Store, inf domain.InferencePort, cfg Config) *Service {
	if cfg.NumResults <= 0 {
		cfg.NumResults = domain.DefaultNumResults
	}
	if cfg.RankItems <= 0 {
		cfg.RankItems = domain.DefaultRankItems
	}
	return &Service{Data: data, Inference: inf, Cfg: cfg}
}

// UserPersonalization fetches recommendations for a user and compares the
// genres of the recommendations with the genres the user interacted with
func (s *Service) UserPersonalization(ctx context.Context, q domain.UserQuery) (domain.UserReport, error) {
	if err := validate.Struct(q); err != nil {
		return domain.UserReport{}, err
	}
	uid, err := s.userOrRandom(q.UserID)
	if err != nil {
		return domain.UserReport{}, err
	}
	log := logger.C(ctx).With().Int64("user_id", uid).Logger()

	hist, err := s.Data.InteractionsForUser(uid)
	if err != nil {
		return domain.UserReport{}, err
	}

	n := q.NumResults
	if n == 0 {
		n = s.Cfg.NumResults
	}
	log.Debug().Int("num_results", n).Msg("getting recommendations")
	items, err := s.Inference.Recommend(ctx, domain.RecommendInput{
		CampaignARN: q.CampaignARN,
		UserID:      dataset.FormatID(uid),
		NumResults:  n,
	})
	if err != nil {
		return domain.UserReport{}, perr.WithOp(err, "recommend.UserPersonalization")
	}
	recs, err := s.enrich(items)
	if err != nil {
		return domain.UserReport{}, err
	}

	return domain.UserReport{
		UserID:          uid,
		Interactions:    hist,
		TopGenres:       genres.TopOf(hist, genres.DefaultTopN),
		Recommendations: recs,
		RecTopGenres:    genres.TopOf(recs, genres.DefaultTopN),
	}, nil
}

// SimilarItems fetches items similar to one catalog item
func (s *Service) SimilarItems(ctx context.Context, q domain.ItemQuery) (domain.ItemReport, error) {
	if err := validate.Struct(q); err != nil {
		return domain.ItemReport{}, err
	}
	id := q.ItemID
	if id == 0 {
		ids, err := s.Data.SampleItemIDs(1)
		if err != nil {
			return domain.ItemReport{}, err
		}
		id = ids[0]
	}
	item, err := s.Data.Movie(id)
	if err != nil {
		return domain.ItemReport{}, err
	}

	n := q.NumResults
	if n == 0 {
		n = s.Cfg.NumResults
	}
	logger.C(ctx).Debug().Int64("item_id", id).Int("num_results", n).Msg("getting similar items")
	items, err := s.Inference.Recommend(ctx, domain.RecommendInput{
		CampaignARN: q.CampaignARN,
		ItemID:      dataset.FormatID(id),
		NumResults:  n,
	})
	if err != nil {
		return domain.ItemReport{}, perr.WithOp(err, "recommend.SimilarItems")
	}
	recs, err := s.enrich(items)
	if err != nil {
		return domain.ItemReport{}, err
	}
	return domain.ItemReport{Item: item, Recommendations: recs}, nil
}

// Rerank asks the runtime to order a list of items for a user
func (s *Service) Rerank(ctx context.Context, q domain.RankQuery) (domain.RankReport, error) {
	if err := validate.Struct(q); err != nil {
		return domain.RankReport{}, err
	}
	uid, err := s.userOrRandom(q.UserID)
	if err != nil {
		return domain.RankReport{}, err
	}

	ids := q.ItemIDs
	if len(ids) == 0 {
		if ids, err = s.Data.SampleItemIDs(s.Cfg.RankItems); err != nil {
			return domain.RankReport{}, err
		}
	}
	unranked := make([]domain.Recommendation, 0, len(ids))
	for i, id := range ids {
		m, err := s.Data.Movie(id)
		if err != nil {
			return domain.RankReport{}, err
		}
		unranked = append(unranked, domain.Recommendation{Rank: i + 1, ItemID: id, Title: m.Title, Genres: m.Genres})
	}

	hist, err := s.Data.InteractionsForUser(uid)
	if err != nil {
		return domain.RankReport{}, err
	}

	logger.C(ctx).Debug().Int64("user_id", uid).Int("items", len(ids)).Msg("getting personalized ranking")
	items, err := s.Inference.Rank(ctx, domain.RankInput{
		CampaignARN: q.CampaignARN,
		UserID:      dataset.FormatID(uid),
		ItemIDs:     dataset.FormatIDs(ids),
	})
	if err != nil {
		return domain.RankReport{}, perr.WithOp(err, "recommend.Rerank")
	}
	reranked, err := s.enrich(items)
	if err != nil {
		return domain.RankReport{}, err
	}

	return domain.RankReport{
		UserID:       uid,
		Unranked:     unranked,
		Interactions: hist,
		TopGenres:    genres.TopOf(hist, genres.DefaultTopN),
		Reranked:     reranked,
	}, nil
}

func (s *Service) userOrRandom(id int64) (int64, error) {
	if id != 0 {
		return id, nil
	}
	ids, err := s.Data.SampleUserIDs(1)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// enrich resolves runtime item ids against the catalog, keeping runtime order
func (s *Service) enrich(items []domain.ScoredItem) ([]domain.Recommendation, error) {
	out := make([]domain.Recommendation, 0, len(items))
	for i, it := range items {
		m, err := s.Data.MovieByString(it.ItemID)
		if err != nil {
			return nil, perr.WithOp(err, "recommend.enrich")
		}
		out = append(out, domain.Recommendation{
			Rank:   i + 1,
			ItemID: m.ItemID,
			Title:  m.Title,
			Genres: m.Genres,
			Score:  it.Score,
		})
	}
	return out, nil
}
