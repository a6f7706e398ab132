// Command movielens-batch-input writes a batch inference input file for one
// job type and optionally uploads it to a bucket
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"movielens/internal/adapters/objectstore"
	"movielens/internal/modkit"
	"movielens/internal/modkit/module"
	"movielens/internal/platform/cli"
	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/validate"

	batchdom "movielens/internal/services/batchinput/domain"
	batchmod "movielens/internal/services/batchinput/module"
)

var usage = cli.Usage{
	Prog:     "movielens-batch-input",
	Synopsis: "-j job-type [-b bucket-name] [-r region] [-n num-records] [-k items-per-rank] [-o output-dir]",
}

type options struct {
	JobType string `name:"job-type" validate:"required,jobkind"`
	Records int    `name:"num-records" validate:"min=0"`
	Items   int    `name:"items-per-rank" validate:"min=0,max=500"`
}

// openObjects is a seam for tests
var openObjects = objectstore.Open

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	kinds := strings.Join(batchdom.KindNames(), ", ")

	fs := usage.NewFlagSet(stderr)
	var (
		jobType = fs.String("j", "", "job type: "+kinds)
		bucket  = fs.String("b", "", "bucket to upload the file to (optional)")
		region  = fs.String("r", "", "AWS region")
		records = fs.Int("n", 0, "number of records (default from BATCH_NUM_RECORDS or 50)")
		items   = fs.Int("k", 0, "items per personalized-ranking record (default from BATCH_ITEMS_PER_RANK or 20)")
		outDir  = fs.String("o", "", "output directory (default from BATCH_OUTPUT_DIR or .)")
	)
	if code, done := cli.Parse(fs, args); done {
		return code
	}

	ctx, log := cli.Start(ctx, *jobType)

	if *jobType == "" {
		usage.Print(stderr, "job-type is required ("+kinds+")")
		return perr.ExitFailure
	}
	batchdom.RegisterValidation()
	if err := validate.Struct(options{JobType: *jobType, Records: *records, Items: *items}); err != nil {
		if e, ok := perr.As(err); ok && e.Field() == "job-type" {
			usage.Print(stderr, "job-type is invalid; must be one of "+kinds)
			return perr.ExitFailure
		}
		usage.Print(stderr, err.Error())
		return perr.ExitUsage
	}
	cli.MustSetEnv("AWS_REGION", *region)

	root := config.New()
	data, err := cli.OpenDataset(cli.DatasetFromConfig(root), *log)
	if err != nil {
		return cli.Fail(log, err, "load dataset failed")
	}

	deps := modkit.Deps{Log: *log, Cfg: root, Data: data}
	if *bucket != "" {
		objs, err := openObjects(ctx, objectstore.FromConfig(root))
		if err != nil {
			return cli.Fail(log, err, "open object store failed")
		}
		deps.Objects = objs
	}

	bm := batchmod.New(deps, batchmod.Options{
		NumRecords:   *records,
		ItemsPerRank: *items,
		OutputDir:    *outDir,
	})
	builder := module.MustPortsOf[batchdom.BuilderPort](bm)

	res, err := builder.Build(ctx, batchdom.Request{Kind: batchdom.JobKind(*jobType)})
	if err != nil {
		return cli.Fail(log, err, "build batch input failed")
	}
	_, _ = fmt.Fprintf(stdout, "Wrote %d %s records to %s\n", res.Records, res.Kind, res.Path)

	res, err = builder.Stage(ctx, res, *bucket)
	if err != nil {
		return cli.Fail(log, err, "upload batch input failed")
	}
	if res.Key != "" {
		_, _ = fmt.Fprintf(stdout, "Uploaded to %s\n", objectstore.URI(res.Bucket, res.Key))
	}
	return perr.ExitOK
}
