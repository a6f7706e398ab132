package objectstore

import (
	"context"
	"errors"
	"strings"

	perr "movielens/internal/platform/errors"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/minio/minio-go/v7"
)

var notFoundCodes = map[string]bool{
	"NoSuchBucket": true,
	"NoSuchKey":    true,
	"NotFound":     true,
}

// classify maps provider errors onto NotFound or Unavailable
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return perr.WithOp(err, op)
	}

	var (
		nsk *s3types.NoSuchKey
		nsb *s3types.NoSuchBucket
		api smithy.APIError
	)
	switch {
	case errors.As(err, &nsk), errors.As(err, &nsb):
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeNotFound, "object not found"), op)
	case errors.As(err, &api) && notFoundCodes[api.ErrorCode()]:
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeNotFound, "object not found"), op)
	}

	if code := minio.ToErrorResponse(err).Code; notFoundCodes[code] {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeNotFound, "object not found"), op)
	}
	if strings.Contains(strings.ToLower(err.Error()), "no such key") {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeNotFound, "object not found"), op)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "object store call interrupted"), op)
	}
	return perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "object store call failed"), op)
}
