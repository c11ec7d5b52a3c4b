package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadFormField is the multipart field holding the image.
const UploadFormField = "product"

// ImageHandler serves image upload and download.
type ImageHandler struct {
	uc usecase.ImageUsecase
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Upload stores the multipart image and returns its public URL.
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(UploadFormField)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "multipart field "+UploadFormField+" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.uc.Upload(c.Request().Context(), &usecase.UploadImageInput{
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get(echo.HeaderContentType),
		Size:         fileHeader.Size,
		Body:         file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.UploadResponse{Success: 1, ImageURL: output.URL})
}

// Serve streams a stored image.
func (h *ImageHandler) Serve(c echo.Context) error {
	img, err := h.uc.Open(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer img.Body.Close()

	if img.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(img.Size, 10))
	}
	contentType := img.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, img.Body)
}
