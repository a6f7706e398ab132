package objectstore

import (
	"context"
	"os"
	"path/filepath"

	"movielens/internal/platform/awscfg"
	"movielens/internal/platform/config"
	perr "movielens/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options selects and configures a provider
type Options struct {
	Provider  string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	LocalRoot string
}

// FromConfig reads OBJECTSTORE_* keys. A configured endpoint without an explicit
// provider selects MinIO
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("OBJECTSTORE_")
	o := Options{
		Endpoint:  c.MayString("ENDPOINT", ""),
		AccessKey: c.MayString("ACCESS_KEY", ""),
		SecretKey: c.MayString("SECRET_KEY", ""),
		UseSSL:    c.MayBool("USE_SSL", true),
		LocalRoot: c.MayPath("LOCAL_ROOT", filepath.Join(os.TempDir(), "movielens-objects")),
	}
	def := ProviderS3
	if o.Endpoint != "" {
		def = ProviderMinIO
	}
	o.Provider = c.MayEnum("PROVIDER", def, ProviderS3, ProviderMinIO, ProviderLocal)
	return o
}

// Open constructs the Store for o.Provider
func Open(ctx context.Context, o Options) (Store, error) {
	switch o.Provider {
	case ProviderLocal:
		return NewLocal(o.LocalRoot), nil
	case ProviderMinIO:
		return NewMinIO(o)
	case ProviderS3, "":
		awsCfg, err := awscfg.Load(ctx, o.Region)
		if err != nil {
			return nil, err
		}
		return NewS3(s3.NewFromConfig(awsCfg)), nil
	default:
		return nil, perr.WithField(perr.InvalidArgf("unknown object store provider %q", o.Provider), "provider")
	}
}
