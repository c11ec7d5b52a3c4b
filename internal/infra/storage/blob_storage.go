// Package storage stores product images in a gocloud blob bucket (local directory, S3, GCS or memory).
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const fileScheme = "file"

// Params defines the parameters required to open the image bucket.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// BucketStorage implements service.ImageStorage on a blob bucket.
type BucketStorage struct {
	bucket *blob.Bucket
}

// New opens images.bucketUrl and closes the bucket on shutdown.
func New(params Params) (service.ImageStorage, error) {
	bucketURL := params.Config.Images.BucketURL

	bucket, err := openBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Image bucket opened", slog.String("bucket_url", bucketURL))

	storage := NewBucketStorage(bucket)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket) *BucketStorage {
	return &BucketStorage{bucket: bucket}
}

// openBucket resolves file:// URLs (relative or absolute) to a created directory; other schemes go through the URL mux.
func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse bucket url %q", bucketURL)
	}

	if u.Scheme != fileScheme {
		bucket, err := blob.OpenBucket(ctx, bucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(filepath.FromSlash(u.Host + u.Path))
	if err != nil {
		return nil, errors.Wrap(err, "resolve image directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create image directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open image directory %s", dir)
	}

	return bucket, nil
}

// Put streams r into key.
func (s *BucketStorage) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	// Cancelling the writer context before Close discards a partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return errors.Wrapf(err, "write %s", key)
	}

	return errors.Wrapf(w.Close(), "close writer for %s", key)
}

// Open returns a reader for key, or service.ErrImageNotFound.
func (s *BucketStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(service.ErrImageNotFound, key)
		}

		return nil, errors.Wrapf(err, "stat %s", key)
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(service.ErrImageNotFound, key)
		}

		return nil, errors.Wrapf(err, "open reader for %s", key)
	}

	return &service.StoredImage{
		Body:        r,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
	}, nil
}

// Close releases the bucket.
func (s *BucketStorage) Close() error {
	return errors.Wrap(s.bucket.Close(), "close bucket")
}
