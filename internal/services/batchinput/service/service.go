// Package service writes batch inference input files from the dataset store
// and stages them in an object store
package service

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"time"

	"movielens/internal/adapters/objectstore"
	"movielens/internal/core/dataset"
	perr "movielens/internal/platform/errors"
	"movielens/internal/platform/logger"
	"movielens/internal/platform/validate"
	"movielens/internal/services/batchinput/domain"

	json "github.com/goccy/go-json"
)

const stampLayout = "20060102-150405"

// Config for the batchinput service
type Config struct {
	NumRecords   int
	ItemsPerRank int
	OutputDir    string
	KeyPrefix    string
}

// Service implements domain.BuilderPort
type Service struct {
	Data    *dataset.Store
	Objects objectstore.Store // nil disables Stage
	Cfg     Config
	Now     func() time.Time
}

// New constructs a batchinput service
func New(data *dataset.Store, objects objectstore.Store, cfg Config) *Service {
	if cfg.NumRecords <= 0 {
		cfg.NumRecords = domain.DefaultNumRecords
	}
	if cfg.ItemsPerRank <= 0 {
		cfg.ItemsPerRank = domain.DefaultItemsPerRank
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = domain.DefaultKeyPrefix
	}
	domain.RegisterValidation()
	return &Service{Data: data, Objects: objects, Cfg: cfg, Now: time.Now}
}

// Filename returns batch-input-<kind>-<YYYYMMDD-HHMMSS>.json for t in local time
func Filename(kind domain.JobKind, t time.Time) string {
	return "batch-input-" + string(kind) + "-" + t.Local().Format(stampLayout) + ".json"
}

// Build samples the records for req.Kind and writes them one JSON object per line
func (s *Service) Build(ctx context.Context, req domain.Request) (domain.Result, error) {
	kind, err := domain.ParseKind(string(req.Kind))
	if err != nil {
		return domain.Result{}, err
	}
	if err := validate.Struct(req); err != nil {
		return domain.Result{}, err
	}
	n, k, dir := req.NumRecords, req.ItemsPerRank, req.OutputDir
	if n == 0 {
		n = s.Cfg.NumRecords
	}
	if k == 0 {
		k = s.Cfg.ItemsPerRank
	}
	if dir == "" {
		dir = s.Cfg.OutputDir
	}
	log := logger.C(ctx).With().Str("kind", kind.String()).Int("records", n).Logger()

	records, err := s.records(kind, n, k)
	if err != nil {
		return domain.Result{}, perr.WithOp(err, "batchinput.Build")
	}

	name := Filename(kind, s.Now())
	path := filepath.Join(dir, name)
	if err := writeLines(path, records); err != nil {
		return domain.Result{}, perr.WithOp(err, "batchinput.Build")
	}
	log.Info().Str("path", path).Msg("wrote batch input file")

	return domain.Result{Kind: kind, Path: path, Filename: name, Records: len(records)}, nil
}

// records samples every record before anything touches the filesystem
func (s *Service) records(kind domain.JobKind, n, k int) ([]any, error) {
	out := make([]any, 0, n)
	switch kind {
	case domain.KindUserPersonalization:
		users, err := s.Data.SampleUserIDs(n)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			out = append(out, domain.UserRecord{UserID: dataset.FormatID(u)})
		}
	case domain.KindSimilarItems:
		items, err := s.Data.SampleItemIDs(n)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, domain.ItemRecord{ItemID: dataset.FormatID(it)})
		}
	case domain.KindPersonalizedRanking:
		users, err := s.Data.SampleUserIDs(n)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			items, err := s.Data.SampleItemIDs(k)
			if err != nil {
				return nil, err
			}
			out = append(out, domain.RankRecord{UserID: dataset.FormatID(u), ItemList: dataset.FormatIDs(items)})
		}
	default:
		return nil, perr.InvalidArgf("unknown job type %q", kind)
	}
	return out, nil
}

// writeLines writes each record as one JSON line; a partial file is removed on failure
func writeLines(path string, records []any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = perr.Wrapf(cerr, perr.ErrorCodeUnknown, "close %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "encode batch record")
		}
	}
	if err := w.Flush(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write %s", path)
	}
	return nil
}

// Stage uploads res.Path to bucket under the configured key prefix
func (s *Service) Stage(ctx context.Context, res domain.Result, bucket string) (domain.Result, error) {
	if bucket == "" {
		logger.C(ctx).Debug().Msg("no bucket given; skipping upload")
		return res, nil
	}
	if s.Objects == nil {
		return res, perr.WithOp(perr.Uninitializedf("object store not configured"), "batchinput.Stage")
	}

	f, err := os.Open(res.Path)
	if err != nil {
		return res, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeNotFound, "open %s", res.Path), "batchinput.Stage")
	}
	defer func() { _ = f.Close() }()
	st, err := f.Stat()
	if err != nil {
		return res, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnknown, "stat %s", res.Path), "batchinput.Stage")
	}

	key := s.Cfg.KeyPrefix + res.Filename
	logger.C(ctx).Info().Str("uri", objectstore.URI(bucket, key)).Msg("uploading batch input file")
	if err := s.Objects.Put(ctx, bucket, key, f, st.Size()); err != nil {
		return res, perr.WithOp(err, "batchinput.Stage")
	}
	res.Bucket, res.Key = bucket, key
	return res, nil
}
