package usecase

import "context"

// GenerateQRInput is the QR form input. Validation runs before any network
// call: an empty name or a non-positive amount never reaches the server.
type GenerateQRInput struct {
	Name   string  `validate:"required"`
	Amount float64 `validate:"required,gt=0"`
}

// QRState is the QR screen state. Image holds the last rendered payload.
type QRState struct {
	Loading bool
	Image   []byte
	Err     error
}

// QRUsecase drives the payment QR screen.
type QRUsecase interface {
	// Generate validates input client-side, then requests a rendered QR
	// image and returns the binary payload.
	Generate(ctx context.Context, input GenerateQRInput) ([]byte, error)

	// Save writes the last generated image to path. It is only invoked on
	// an explicit user action; Generate never persists anything.
	Save(path string) error

	// State returns a snapshot of the screen state.
	State() QRState
}
