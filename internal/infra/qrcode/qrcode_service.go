// Package qrcode renders payment QR images. The production renderer lives on
// the remote server; this implementation backs the development stub.
package qrcode

import (
	"encoding/json"
	"fmt"

	"creditdesk/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size int
}

// PaymentQRData is the payload encoded into the QR image.
type PaymentQRData struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// NewQRCodeService creates a payment QR renderer producing size x size PNGs.
func NewQRCodeService(size int) service.PaymentQRService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{size: size}
}

// GeneratePaymentQR renders a QR code encoding a payment of amount to name.
func (s *qrcodeService) GeneratePaymentQR(name string, amount float64) ([]byte, error) {
	data := PaymentQRData{
		Name:   name,
		Amount: amount,
		Type:   "payment",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
