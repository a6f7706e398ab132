// Command movielens-ranking reranks a list of items for a user with a
// personalized-ranking campaign and shows both orders side by side
package main

import (
	"context"
	"io"
	"os"
	"strings"

	"movielens/internal/adapters/personalize"
	"movielens/internal/core/dataset"
	"movielens/internal/modkit"
	"movielens/internal/modkit/module"
	"movielens/internal/platform/cli"
	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/validate"

	recdom "movielens/internal/services/recommend/domain"
	recmod "movielens/internal/services/recommend/module"
	"movielens/internal/services/recommend/present"
)

var usage = cli.Usage{
	Prog:     "movielens-ranking",
	Synopsis: "-c campaign-arn [-u user-id] [-i item-ids] [-r region]",
}

type options struct {
	ItemIDs string `name:"item-ids" validate:"omitempty,comma_ints"`
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
		campaign = fs.String("c", "", "personalized-ranking campaign ARN")
		userID   = fs.Int64("u", 0, "user id (default: random user)")
		itemIDs  = fs.String("i", "", "comma-separated item ids to rank (default: 20 random items)")
		region   = fs.String("r", "", "AWS region")
	)
	if code, done := cli.Parse(fs, args); done {
		return code
	}
	if *campaign == "" {
		usage.Print(stderr, "")
		return perr.ExitFailure
	}
	if err := validate.Struct(options{ItemIDs: *itemIDs}); err != nil {
		usage.Print(stderr, err.Error())
		return perr.ExitUsage
	}
	var items []int64
	if s := strings.TrimSpace(*itemIDs); s != "" {
		ids, err := dataset.ParseIDs(strings.Split(s, ","))
		if err != nil {
			usage.Print(stderr, err.Error())
			return perr.ExitUsage
		}
		items = ids
	}
	cli.MustSetEnv("AWS_REGION", *region)

	ctx, log := cli.Start(ctx, "personalized-ranking")
	root := config.New()
	data, err := cli.OpenDataset(cli.DatasetFromConfig(root), *log)
	if err != nil {
		return cli.Fail(log, err, "load dataset failed")
	}
	inf, err := openInference(ctx, *region)
	if err != nil {
		return cli.Fail(log, err, "open personalize runtime failed")
	}

	rm := recmod.New(modkit.Deps{Log: *log, Cfg: root, Data: data, Inference: inf}, recmod.Options{})
	demos := module.MustPortsOf[recdom.DemoPort](rm)

	report, err := demos.Rerank(ctx, recdom.RankQuery{
		CampaignARN: *campaign,
		UserID:      *userID,
		ItemIDs:     items,
	})
	if err != nil {
		return cli.Fail(log, err, "personalized ranking failed")
	}
	if err := present.Rank(stdout, report); err != nil {
		return cli.Fail(log, err, "render failed")
	}
	return perr.ExitOK
}
