package main

import (
	"bytes"
	"context"
	"testing"

	perr "movielens/internal/platform/errors"
	kit "movielens/internal/platform/testkit"
)

func TestRun(t *testing.T) {
	inf := &echoInference{items: []string{"6", "10"}}
	withFixture(t, inf)

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-c", testARN, "-u", "1", "-n", "2"}, &stdout, &stderr); code != perr.ExitOK {
		t.Fatalf("exit = %d\nstderr: %s", code, stderr.String())
	}
	if inf.rec.UserID != "1" || inf.rec.NumResults != 2 {
		t.Fatalf("inference input = %+v", inf.rec)
	}
	out := stdout.String()
	kit.MustContain(t, out, "USER INFO")
	kit.MustContain(t, out, "Toy Story (1995)")
	kit.MustContain(t, out, "GoldenEye (1995)")
	kit.MustContain(t, out, "RECOMMENDED GENRES")
}

func TestRun_Usage(t *testing.T) {
	withFixture(t, &echoInference{})

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), nil, &stdout, &stderr); code != perr.ExitFailure {
		t.Fatalf("missing campaign exit = %d", code)
	}
	kit.MustContain(t, stderr.String(), "Usage: movielens-user-personalization -c campaign-arn [-u user-id] [-r region]")

	stderr.Reset()
	if code := run(context.Background(), []string{"-u", "abc"}, &stdout, &stderr); code != perr.ExitUsage {
		t.Fatalf("bad user id exit = %d", code)
	}
}

func TestRun_UnknownRecommendation(t *testing.T) {
	withFixture(t, &echoInference{items: []string{"404"}})

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-c", testARN, "-u", "1"}, &stdout, &stderr); code != perr.ExitFailure {
		t.Fatalf("exit = %d, want %d", code, perr.ExitFailure)
	}
}
