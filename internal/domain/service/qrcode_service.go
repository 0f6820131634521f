package service

// QRCodeService generates QR code images.
type QRCodeService interface {
	// Generate renders the content as a PNG QR code.
	Generate(content string) ([]byte, error)
}
