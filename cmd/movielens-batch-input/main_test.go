package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movielens/internal/adapters/objectstore"
	perr "movielens/internal/platform/errors"
	kit "movielens/internal/platform/testkit"
)

func fixtureEnv(t *testing.T) {
	t.Helper()
	ml := kit.WriteMovieLens(t, "", "")
	t.Setenv("DATASET_MOVIES_PATH", ml.MoviesPath)
	t.Setenv("DATASET_INTERACTIONS_PATH", ml.InteractionsPath)
	t.Setenv("DATASET_MOVIES_ENCODING", "")
	t.Setenv("BATCH_NUM_RECORDS", "")
	t.Setenv("BATCH_ITEMS_PER_RANK", "")
	t.Setenv("BATCH_OUTPUT_DIR", "")
	t.Setenv("BATCH_KEY_PREFIX", "")
	t.Setenv("OBJECTSTORE_PROVIDER", "")
	t.Setenv("OBJECTSTORE_ENDPOINT", "")
	t.Setenv("AWS_REGION", "")
}

func TestRun_Usage(t *testing.T) {
	fixtureEnv(t)
	cases := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{"help", []string{"-h"}, perr.ExitOK, "Usage: movielens-batch-input -j job-type"},
		{"bad flag", []string{"-x"}, perr.ExitUsage, "flag provided but not defined"},
		{"missing job type", nil, perr.ExitFailure, "job-type is required"},
		{"invalid job type", []string{"-j", "trending"}, perr.ExitFailure, "job-type is invalid; must be one of user-personalization, similar-items, personalized-ranking"},
		{"negative records", []string{"-j", "similar-items", "-n", "-1"}, perr.ExitUsage, "num-records must be at least 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(context.Background(), c.args, &stdout, &stderr); code != c.code {
				t.Fatalf("exit = %d, want %d\nstderr: %s", code, c.code, stderr.String())
			}
			kit.MustContain(t, stderr.String(), c.out)
		})
	}
}

func TestRun_WritesFile(t *testing.T) {
	fixtureEnv(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-j", "personalized-ranking", "-n", "4", "-k", "2", "-o", dir}, &stdout, &stderr)
	if code != perr.ExitOK {
		t.Fatalf("exit = %d\nstderr: %s", code, stderr.String())
	}
	kit.MustContain(t, stdout.String(), "Wrote 4 personalized-ranking records")

	matches, _ := filepath.Glob(filepath.Join(dir, "batch-input-personalized-ranking-*.json"))
	if len(matches) != 1 {
		t.Fatalf("files = %v", matches)
	}
	raw, _ := os.ReadFile(matches[0])
	if n := strings.Count(string(raw), "\n"); n != 4 {
		t.Fatalf("lines = %d, want 4", n)
	}
}

func TestRun_InsufficientData(t *testing.T) {
	fixtureEnv(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-j", "user-personalization", "-n", "50", "-o", t.TempDir()}, &stdout, &stderr)
	if code != perr.ExitFailure {
		t.Fatalf("exit = %d, want %d", code, perr.ExitFailure)
	}
}

func TestRun_Uploads(t *testing.T) {
	fixtureEnv(t)
	kit.Serial(t)
	root := t.TempDir()
	t.Setenv("OBJECTSTORE_PROVIDER", "local")
	t.Setenv("OBJECTSTORE_LOCAL_ROOT", root)

	var opened objectstore.Options
	kit.Swap(t, &openObjects, func(ctx context.Context, o objectstore.Options) (objectstore.Store, error) {
		opened = o
		return objectstore.Open(ctx, o)
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-j", "similar-items", "-n", "3", "-o", t.TempDir(), "-b", "demo-bucket", "-r", "us-west-2"}, &stdout, &stderr)
	if code != perr.ExitOK {
		t.Fatalf("exit = %d\nstderr: %s", code, stderr.String())
	}
	if opened.Provider != objectstore.ProviderLocal {
		t.Fatalf("provider = %q", opened.Provider)
	}
	if os.Getenv("AWS_REGION") != "us-west-2" {
		t.Fatalf("region flag not pushed into env")
	}
	kit.MustContain(t, stdout.String(), "Uploaded to s3://demo-bucket/input/batch-input-similar-items-")

	keys, err := objectstore.NewLocal(root).List(context.Background(), "demo-bucket", "input/")
	if err != nil || len(keys) != 1 {
		t.Fatalf("uploaded keys = %v, %v", keys, err)
	}
}
