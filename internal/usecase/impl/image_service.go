package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageTypes maps accepted extensions to the content type stored with the object.
var allowedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type imageService struct {
	storage       service.ImageStorage
	publicBaseURL string
	maxUploadSize int64
	logger        *slog.Logger
	now           func() time.Time
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewImageService creates the image usecase.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	srv := &imageService{
		storage: params.Storage,
		logger:  params.Logger,
		now:     time.Now,
	}
	if params.Config != nil && params.Config.Images != nil {
		srv.publicBaseURL = strings.TrimRight(params.Config.Images.PublicBaseURL, "/")
		srv.maxUploadSize = params.Config.Images.MaxUploadSize
	}

	return srv
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the image as product_<unix millis><ext>.
func (srv *imageService) Upload(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.OriginalName))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage)
	}
	if input.ContentType != "" && !strings.HasPrefix(input.ContentType, "image/") {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage)
	}
	if srv.maxUploadSize > 0 && input.Size > srv.maxUploadSize {
		return nil, errors.WithStack(domainerrors.ErrImageTooLarge)
	}

	body := input.Body
	if srv.maxUploadSize > 0 {
		// Size is client supplied, so the stream itself is capped as well.
		body = &limitedReader{r: io.LimitReader(input.Body, srv.maxUploadSize+1), limit: srv.maxUploadSize}
	}

	key := "product_" + strconv.FormatInt(srv.now().UnixMilli(), 10) + ext
	if err := srv.storage.Put(ctx, key, contentType, body); err != nil {
		if errors.Is(err, errUploadTooLarge) {
			return nil, errors.WithStack(domainerrors.ErrImageTooLarge)
		}

		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("key", key))

	return &usecase.UploadImageOutput{
		Key: key,
		URL: srv.publicBaseURL + "/images/" + key,
	}, nil
}

// Open returns the stored image for streaming.
func (srv *imageService) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}

	img, err := srv.storage.Open(ctx, key)
	if errors.Is(err, service.ErrImageNotFound) {
		return nil, errors.WithStack(domainerrors.ErrImageNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}

	return img, nil
}

var errUploadTooLarge = errors.New("upload exceeds maximum size")

type limitedReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		return n, errUploadTooLarge
	}

	return n, err
}
