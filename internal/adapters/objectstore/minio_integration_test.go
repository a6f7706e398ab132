//go:build integration_minio

package objectstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMinIO_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	req := tc.ContainerRequest{
		Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "movielens",
			"MINIO_ROOT_PASSWORD": "movielens-secret",
		},
		WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp").WithStartupTimeout(90 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("start minio: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "9000/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	s, err := NewMinIO(Options{
		Endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKey: "movielens",
		SecretKey: "movielens-secret",
	})
	if err != nil {
		t.Fatalf("NewMinIO: %v", err)
	}
	if err := s.EnsureBucket(ctx, "personalize-demo"); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}

	body := "{\"userId\":\"42\"}\n{\"userId\":\"7\"}\n"
	if err := s.Put(ctx, "personalize-demo", "input/batch.json", strings.NewReader(body), int64(len(body))); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "personalize-demo", "input/batch.json")
	if err != nil || string(got) != body {
		t.Fatalf("Get = %q, %v", got, err)
	}
	keys, err := s.List(ctx, "personalize-demo", "input/")
	if err != nil || !slices.Equal(keys, []string{"input/batch.json"}) {
		t.Fatalf("List = %v, %v", keys, err)
	}
}
