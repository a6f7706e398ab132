// Package personalize implements the recommend inference port on the Amazon
// Personalize runtime API
package personalize

import (
	"context"

	"movielens/internal/platform/awscfg"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
	"movielens/internal/services/recommend/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/personalizeruntime"
	"github.com/aws/aws-sdk-go-v2/service/personalizeruntime/types"
)

// RuntimeAPI is the subset of the runtime client used here
type RuntimeAPI interface {
	GetRecommendations(ctx context.Context, params *personalizeruntime.GetRecommendationsInput, optFns ...func(*personalizeruntime.Options)) (*personalizeruntime.GetRecommendationsOutput, error)
	GetPersonalizedRanking(ctx context.Context, params *personalizeruntime.GetPersonalizedRankingInput, optFns ...func(*personalizeruntime.Options)) (*personalizeruntime.GetPersonalizedRankingOutput, error)
}

var (
	_ RuntimeAPI           = (*personalizeruntime.Client)(nil)
	_ domain.InferencePort = (*Client)(nil)
)

// Client implements domain.InferencePort
type Client struct {
	api RuntimeAPI
	log logger.Logger
}

// New wraps a runtime API client
func New(api RuntimeAPI) *Client {
	return &Client{api: api, log: *logger.Named("personalize")}
}

// Open loads the default AWS config for region and builds a Client
func Open(ctx context.Context, region string) (*Client, error) {
	cfg, err := awscfg.Load(ctx, region)
	if err != nil {
		return nil, err
	}
	return New(personalizeruntime.NewFromConfig(cfg)), nil
}

// Recommend calls GetRecommendations with either a user or an item
func (c *Client) Recommend(ctx context.Context, in domain.RecommendInput) ([]domain.ScoredItem, error) {
	if in.CampaignARN == "" {
		return nil, perr.WithField(perr.InvalidArgf("campaign arn is required"), "campaign_arn")
	}
	if in.UserID == "" && in.ItemID == "" {
		return nil, perr.InvalidArgf("recommend needs a user id or an item id")
	}
	req := &personalizeruntime.GetRecommendationsInput{
		CampaignArn: aws.String(in.CampaignARN),
	}
	if in.UserID != "" {
		req.UserId = aws.String(in.UserID)
	}
	if in.ItemID != "" {
		req.ItemId = aws.String(in.ItemID)
	}
	if in.NumResults > 0 {
		req.NumResults = aws.Int32(int32(in.NumResults))
	}

	c.log.Debug().Str("campaign", in.CampaignARN).Str("user_id", in.UserID).Str("item_id", in.ItemID).Msg("GetRecommendations")
	out, err := c.api.GetRecommendations(ctx, req)
	if err != nil {
		return nil, perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "get recommendations"), "personalize.Recommend")
	}
	return scored(out.ItemList), nil
}

// Rank calls GetPersonalizedRanking
func (c *Client) Rank(ctx context.Context, in domain.RankInput) ([]domain.ScoredItem, error) {
	if in.CampaignARN == "" {
		return nil, perr.WithField(perr.InvalidArgf("campaign arn is required"), "campaign_arn")
	}
	if in.UserID == "" {
		return nil, perr.WithField(perr.InvalidArgf("user id is required"), "user_id")
	}
	if len(in.ItemIDs) == 0 {
		return []domain.ScoredItem{}, nil
	}

	c.log.Debug().Str("campaign", in.CampaignARN).Str("user_id", in.UserID).Int("items", len(in.ItemIDs)).Msg("GetPersonalizedRanking")
	out, err := c.api.GetPersonalizedRanking(ctx, &personalizeruntime.GetPersonalizedRankingInput{
		CampaignArn: aws.String(in.CampaignARN),
		UserId:      aws.String(in.UserID),
		InputList:   in.ItemIDs,
	})
	if err != nil {
		return nil, perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "get personalized ranking"), "personalize.Rank")
	}
	return scored(out.PersonalizedRanking), nil
}

func scored(items []types.PredictedItem) []domain.ScoredItem {
	out := make([]domain.ScoredItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ScoredItem{ItemID: aws.ToString(it.ItemId), Score: it.Score})
	}
	return out
}
