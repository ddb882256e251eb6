package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR generates a PNG QR code encoding a payment receipt
	// reference (payment key plus its order key).
	GeneratePaymentQR(paymentKey, orderKey string) ([]byte, error)
}
