package objectstore

import (
	"context"
	"io"
	"net/url"

	perr "movielens/internal/platform/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO talks to an S3-compatible endpoint through minio-go
type MinIO struct {
	client *minio.Client
}

// NewMinIO builds a client from o.Endpoint and static credentials. The endpoint
// may be a bare host:port or a URL; an https scheme forces TLS
func NewMinIO(o Options) (*MinIO, error) {
	if o.Endpoint == "" {
		return nil, perr.WithField(perr.InvalidArgf("minio endpoint is required"), "endpoint")
	}
	if o.AccessKey == "" || o.SecretKey == "" {
		return nil, perr.WithField(perr.InvalidArgf("minio credentials are required"), "access_key")
	}

	endpoint, secure := o.Endpoint, o.UseSSL
	if u, err := url.Parse(o.Endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(o.AccessKey, o.SecretKey, ""),
		Secure: secure,
		Region: o.Region,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "create minio client")
	}
	return &MinIO{client: client}, nil
}

// Put uploads body; size -1 streams with an unknown length
func (s *MinIO) Put(ctx context.Context, bucket, key string, body io.Reader, size int64) error {
	if err := checkTarget(bucket, key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	return classify(err, "objectstore.MinIO.Put")
}

// Get downloads an object
func (s *MinIO) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := checkTarget(bucket, key); err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(err, "objectstore.MinIO.Get")
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classify(err, "objectstore.MinIO.Get")
	}
	return data, nil
}

// List returns keys under prefix, recursively
func (s *MinIO) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	if bucket == "" {
		return nil, perr.WithField(perr.InvalidArgf("bucket is required"), "bucket")
	}
	var keys []string
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, classify(obj.Err, "objectstore.MinIO.List")
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// EnsureBucket creates bucket when missing
func (s *MinIO) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return classify(err, "objectstore.MinIO.EnsureBucket")
	}
	if exists {
		return nil
	}
	return classify(s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}), "objectstore.MinIO.EnsureBucket")
}
