// Package awscfg loads the shared AWS SDK configuration used by the S3 and
// Personalize runtime clients
package awscfg

import (
	"context"

	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// loadDefault is a seam for tests
var loadDefault = awsconfig.LoadDefaultConfig

// Region resolves the region from an explicit value, then AWS_REGION and AWS_DEFAULT_REGION.
// An empty result leaves resolution to the SDK (shared config profile)
func Region(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return config.New().MayFirst("", "AWS_REGION", "AWS_DEFAULT_REGION")
}

// Load builds an aws.Config from the default credential chain with an optional region override
func Load(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if r := Region(region); r != "" {
		opts = append(opts, awsconfig.WithRegion(r))
	}
	cfg, err := loadDefault(ctx, opts...)
	if err != nil {
		return aws.Config{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "load aws config")
	}
	return cfg, nil
}
