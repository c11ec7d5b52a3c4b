package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("http://localhost:4000", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService("http://localhost:4000", 256, "M")

	qrBytes, err := service.GenerateProductQR(7)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService("http://localhost:4000", size, "M")

		qrBytes, err := service.GenerateProductQR(1)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_ProductURL(t *testing.T) {
	service, ok := NewQRCodeService("https://shop.example.com/", 256, "M").(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, "https://shop.example.com/product/42", service.ProductURL(42))
}
