package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShowcaseQR renders a PNG QR code pointing at the given showcase URL.
	GenerateShowcaseQR(url string) ([]byte, error)
}
