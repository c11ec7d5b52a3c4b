package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/service"
)

// UploadImageInput is one uploaded product image.
type UploadImageInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// UploadImageOutput names the stored object.
type UploadImageOutput struct {
	Key string
	URL string
}

// ImageUsecase stores and serves product images.
type ImageUsecase interface {
	Upload(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
	Open(ctx context.Context, key string) (*service.StoredImage, error)
}
