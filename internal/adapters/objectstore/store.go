// Package objectstore stages files in S3, an S3-compatible MinIO endpoint or a
// local directory behind one narrow interface
package objectstore

import (
	"context"
	"io"
	"path"
	"strings"

	perr "movielens/internal/platform/errors"
)

// Store is the minimal object store surface used to stage batch input files
type Store interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64) error
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	List(ctx context.Context, bucket, prefix string) ([]string, error)
}

// Provider names accepted by OBJECTSTORE_PROVIDER
const (
	ProviderS3    = "s3"
	ProviderMinIO = "minio"
	ProviderLocal = "local"
)

// URI renders bucket and key as an s3:// location
func URI(bucket, key string) string { return "s3://" + bucket + "/" + key }

func checkTarget(bucket, key string) error {
	if strings.TrimSpace(bucket) == "" {
		return perr.WithField(perr.InvalidArgf("bucket is required"), "bucket")
	}
	if strings.TrimSpace(key) == "" {
		return perr.WithField(perr.InvalidArgf("object key is required"), "key")
	}
	if c := path.Clean("/" + key); c != "/"+strings.TrimPrefix(key, "/") {
		return perr.WithField(perr.InvalidArgf("object key %q is not clean", key), "key")
	}
	return nil
}
