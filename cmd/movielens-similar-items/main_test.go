package main

import (
	"bytes"
	"context"
	"testing"

	perr "movielens/internal/platform/errors"
	kit "movielens/internal/platform/testkit"
)

func TestRun(t *testing.T) {
	inf := &echoInference{items: []string{"10", "9"}}
	withFixture(t, inf)

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-c", testARN, "-i", "6"}, &stdout, &stderr); code != perr.ExitOK {
		t.Fatalf("exit = %d\nstderr: %s", code, stderr.String())
	}
	if inf.rec.ItemID != "6" || inf.rec.NumResults != 50 {
		t.Fatalf("inference input = %+v", inf.rec)
	}
	out := stdout.String()
	kit.MustContain(t, out, "ITEM INFO")
	kit.MustContain(t, out, "Heat (1995)")
	kit.MustContain(t, out, "SIMILAR ITEMS")
	kit.MustContain(t, out, "Sudden Death (1995)")
}

func TestRun_Errors(t *testing.T) {
	withFixture(t, &echoInference{})

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-i", "6"}, &stdout, &stderr); code != perr.ExitFailure {
		t.Fatalf("missing campaign exit = %d", code)
	}
	if code := run(context.Background(), []string{"-c", testARN, "-i", "404"}, &stdout, &stderr); code != perr.ExitFailure {
		t.Fatalf("unknown item exit = %d", code)
	}
	if code := run(context.Background(), []string{"-h"}, &stdout, &stderr); code != perr.ExitOK {
		t.Fatalf("help exit = %d", code)
	}
}
