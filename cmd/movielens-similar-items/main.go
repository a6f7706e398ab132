// Command movielens-similar-items shows an item and the items a similar-items
// campaign considers closest to it
package main

import (
	"context"
	"io"
	"os"

	"movielens/internal/adapters/personalize"
	"movielens/internal/modkit"
	"movielens/internal/modkit/module"
	"movielens/internal/platform/cli"
	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"

	recdom "movielens/internal/services/recommend/domain"
	recmod "movielens/internal/services/recommend/module"
	"movielens/internal/services/recommend/present"
)

var usage = cli.Usage{
	Prog:     "movielens-similar-items",
	Synopsis: "-c campaign-arn [-i item-id] [-r region]",
}

// openInference is a seam for tests
var openInference = func(ctx context.Context, region string) (recdom.InferencePort, error) {
	return personalize.Open(ctx, region)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := usage.NewFlagSet(stderr)
	var (
		campaign = fs.String("c", "", "similar-items campaign ARN")
		itemID   = fs.Int64("i", 0, "item id (default: random item)")
		region   = fs.String("r", "", "AWS region")
		results  = fs.Int("n", 0, "number of similar items (default from PERSONALIZE_NUM_RESULTS or 50)")
	)
	if code, done := cli.Parse(fs, args); done {
		return code
	}
	if *campaign == "" {
		usage.Print(stderr, "")
		return perr.ExitFailure
	}
	cli.MustSetEnv("AWS_REGION", *region)

	ctx, log := cli.Start(ctx, "similar-items")
	root := config.New()
	data, err := cli.OpenDataset(cli.DatasetFromConfig(root), *log)
	if err != nil {
		return cli.Fail(log, err, "load dataset failed")
	}
	inf, err := openInference(ctx, *region)
	if err != nil {
		return cli.Fail(log, err, "open personalize runtime failed")
	}

	rm := recmod.New(modkit.Deps{Log: *log, Cfg: root, Data: data, Inference: inf}, recmod.Options{NumResults: *results})
	demos := module.MustPortsOf[recdom.DemoPort](rm)

	report, err := demos.SimilarItems(ctx, recdom.ItemQuery{
		CampaignARN: *campaign,
		ItemID:      *itemID,
		NumResults:  *results,
	})
	if err != nil {
		return cli.Fail(log, err, "similar items failed")
	}
	if err := present.Item(stdout, report); err != nil {
		return cli.Fail(log, err, "render failed")
	}
	return perr.ExitOK
}
