package service

// QRCodeService renders QR codes for shareable product links.
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code encoding the product page URL.
	GenerateProductQR(catalogID int) ([]byte, error)
}
