// Package storage persists uploaded catalog images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"aeon/config"
	"aeon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers the file:// scheme
)

const defaultImageDir = "public/img"

type imageStore struct {
	bucket       *blob.Bucket
	publicPrefix string
	now          func() time.Time
	logger       *slog.Logger
}

// ImageStoreParams holds dependencies for ImageStore, injected by Fx.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	bucketURL, err := resolveBucketURL(params.Config.Upload.BucketURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return &imageStore{
		bucket:       bucket,
		publicPrefix: strings.TrimRight(params.Config.Upload.PublicPrefix, "/"),
		now:          time.Now,
		logger:       params.Logger,
	}, nil
}

// resolveBucketURL falls back to a local directory next to the binary.
func resolveBucketURL(raw string) (string, error) {
	if raw != "" {
		return raw, nil
	}

	dir, err := filepath.Abs(defaultImageDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve image directory")
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(dir), RawQuery: "create_dir=true"}

	return u.String(), nil
}

// Save writes content under <kind>/<unix-millis>-<base filename> and returns the public path.
func (s *imageStore) Save(ctx context.Context, kind service.ImageKind, filename string, content io.Reader) (string, error) {
	key := objectKey(kind, filename, s.now())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, content); err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.Debug("Image stored", slog.String("key", key))

	return s.publicPrefix + "/" + key, nil
}

func objectKey(kind service.ImageKind, filename string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" {
		base = "upload"
	}

	return string(kind) + "/" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + base
}
