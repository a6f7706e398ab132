// Package cli holds the bootstrap shared by the command line tools: flag
// parsing with usage lines, logger setup, dataset loading and exit codes
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"movielens/internal/core/dataset"
	"movielens/internal/core/version"
	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
)

// Usage is the one-line synopsis printed for -h and for missing required flags
type Usage struct {
	Prog     string
	Synopsis string // e.g. "-c campaign-arn [-u user-id] [-r region]"
}

// NewFlagSet returns a ContinueOnError flag set whose usage prints the synopsis and defaults to w
func (u Usage) NewFlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(u.Prog, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		u.Print(w, "")
		fs.PrintDefaults()
	}
	return fs
}

// Print writes an optional message followed by the synopsis
func (u Usage) Print(w io.Writer, msg string) {
	if msg != "" {
		_, _ = fmt.Fprintln(w, msg)
	}
	_, _ = fmt.Fprintf(w, "Usage: %s %s\n", u.Prog, u.Synopsis)
}

// Parse parses args and returns (exit code, done). -h exits 0; a parse error exits 2
func Parse(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return perr.ExitOK, true
		}
		return perr.ExitUsage, true
	}
	return 0, false
}

// MustSetEnv pushes a non-empty flag value into the environment so module
// FromConfig readers see it
func MustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

// Start initializes the root logger and returns a context carrying a fresh run id
// and job, plus a logger tagged with both
func Start(ctx context.Context, job string) (context.Context, *logger.Logger) {
	runID := logger.NewRunID()
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "movielens"
	}
	logger.Init(opts)
	ctx = logger.WithRun(ctx, runID, job)
	log := logger.C(ctx)

	bi := version.Info(job)
	log.Debug().Str("version", bi.Version).Str("commit", bi.Commit).Str("built", bi.Date).Msg("starting")
	return ctx, log
}

// DatasetPaths are the catalog and interaction log locations
type DatasetPaths struct {
	Movies       string
	Interactions string
	Encoding     string
}

// DatasetFromConfig reads DATASET_* keys; defaults are movies.csv and
// interactions.csv in the working directory, latin-1 catalog
func DatasetFromConfig(cfg config.Conf) DatasetPaths {
	dc := cfg.Prefix("DATASET_")
	return DatasetPaths{
		Movies:       dc.MayPath("MOVIES_PATH", "movies.csv"),
		Interactions: dc.MayPath("INTERACTIONS_PATH", "interactions.csv"),
		Encoding:     dc.MayEnum("MOVIES_ENCODING", dataset.EncodingLatin1, dataset.EncodingLatin1, "latin-1", "iso-8859-1", dataset.EncodingUTF8, "utf8"),
	}
}

// OpenDataset builds a Store and loads both tables
func OpenDataset(p DatasetPaths, log logger.Logger) (*dataset.Store, error) {
	st, err := dataset.New(dataset.WithLogger(log), dataset.WithMoviesEncoding(p.Encoding))
	if err != nil {
		return nil, err
	}
	if err := st.Load(p.Movies, p.Interactions); err != nil {
		return nil, err
	}
	return st, nil
}

// Fail logs err with its code and returns the mapped exit code
func Fail(log *logger.Logger, err error, msg string) int {
	ev := log.Error().Err(err).Str("code", perr.CodeOf(err).String())
	if e, ok := perr.As(err); ok {
		if e.Field() != "" {
			ev = ev.Str("field", e.Field())
		}
		if e.Op() != "" {
			ev = ev.Str("op", e.Op())
		}
	}
	ev.Msg(msg)
	return perr.ExitCode(err)
}
