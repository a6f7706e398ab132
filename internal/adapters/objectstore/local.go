package objectstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	perr "movielens/internal/platform/errors"
)

// Local persists objects under root/<bucket>/<key>; used for dry runs and tests
type Local struct {
	root string
}

// NewLocal creates a local store rooted at root
func NewLocal(root string) *Local {
	if root == "" {
		root = filepath.Join(os.TempDir(), "movielens-objects")
	}
	return &Local{root: root}
}

// Root returns the directory backing the store
func (s *Local) Root() string { return s.root }

// Put writes body to the object path, creating parent directories
func (s *Local) Put(ctx context.Context, bucket, key string, body io.Reader, _ int64) error {
	if err := ctx.Err(); err != nil {
		return classify(err, "objectstore.Local.Put")
	}
	if err := checkTarget(bucket, key); err != nil {
		return err
	}
	full := s.objectPath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return classify(err, "objectstore.Local.Put")
	}
	f, err := os.Create(full)
	if err != nil {
		return classify(err, "objectstore.Local.Put")
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return classify(err, "objectstore.Local.Put")
	}
	return classify(f.Close(), "objectstore.Local.Put")
}

// Get reads an object; a missing object is NotFound
func (s *Local) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err, "objectstore.Local.Get")
	}
	if err := checkTarget(bucket, key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.objectPath(bucket, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeNotFound, "object %s not found", URI(bucket, key)), "objectstore.Local.Get")
		}
		return nil, classify(err, "objectstore.Local.Get")
	}
	return data, nil
}

// List returns the sorted keys under prefix; a missing bucket lists nothing
func (s *Local) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err, "objectstore.Local.List")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, perr.WithField(perr.InvalidArgf("bucket is required"), "bucket")
	}
	base := s.bucketPath(bucket)
	var keys []string
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, classify(err, "objectstore.Local.List")
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *Local) bucketPath(bucket string) string {
	return filepath.Join(s.root, sanitize(bucket))
}

func (s *Local) objectPath(bucket, key string) string {
	return filepath.Join(s.bucketPath(bucket), filepath.FromSlash(strings.TrimPrefix(key, "/")))
}

func sanitize(raw string) string {
	return strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(raw)
}
