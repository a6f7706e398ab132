package objectstore

import (
	"context"
	"io"

	perr "movielens/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used here
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var _ S3API = (*s3.Client)(nil)

// S3 stores objects in Amazon S3
type S3 struct {
	api S3API
}

// NewS3 wraps an S3 client
func NewS3(api S3API) *S3 { return &S3{api: api} }

// Put uploads body; size < 0 leaves the content length unset
func (s *S3) Put(ctx context.Context, bucket, key string, body io.Reader, size int64) error {
	if err := checkTarget(bucket, key); err != nil {
		return err
	}
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if size >= 0 {
		in.ContentLength = aws.Int64(size)
	}
	_, err := s.api.PutObject(ctx, in)
	return classify(err, "objectstore.S3.Put")
}

// Get downloads an object
func (s *S3) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := checkTarget(bucket, key); err != nil {
		return nil, err
	}
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return nil, classify(err, "objectstore.S3.Get")
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, classify(err, "objectstore.S3.Get")
	}
	return data, nil
}

// List returns keys under prefix across all result pages
func (s *S3) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	if bucket == "" {
		return nil, perr.WithField(perr.InvalidArgf("bucket is required"), "bucket")
	}
	var keys []string
	p := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, classify(err, "objectstore.S3.List")
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
