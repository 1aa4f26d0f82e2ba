package service

// PaymentQRService renders payment QR images. In production rendering
// happens on the remote server; this interface is implemented locally by the
// development stub.
type PaymentQRService interface {
	// GeneratePaymentQR renders a QR code encoding a payment of amount to
	// name and returns it as PNG bytes.
	GeneratePaymentQR(name string, amount float64) ([]byte, error)
}
