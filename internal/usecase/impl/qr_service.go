package impl

import (
	"context"
	"log/slog"
	"math"
	"os"

	"creditdesk/internal/domain/faults"
	"creditdesk/internal/domain/repository"
	"creditdesk/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type qrService struct {
	directory repository.DirectoryRepository
	validate  *validator.Validate
	logger    *slog.Logger
	state     usecase.QRState
}

// NewQRService creates the QR screen controller.
func NewQRService(directory repository.DirectoryRepository, logger *slog.Logger) usecase.QRUsecase {
	return &qrService{
		directory: directory,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Generate validates the form input and requests a rendered QR image.
// Invalid input is rejected before any network call is made.
func (s *qrService) Generate(ctx context.Context, input usecase.GenerateQRInput) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		s.state.Err = err

		return nil, err
	}

	s.state.Loading = true
	s.state.Image = nil
	defer func() { s.state.Loading = false }()

	image, err := s.directory.GenerateQR(ctx, input.Name, input.Amount)
	if err != nil {
		s.state.Err = err
		s.logger.Warn("qr generation failed", slog.Any("error", err))

		return nil, err
	}

	s.state.Image = image
	s.state.Err = nil

	return image, nil
}

// Save writes the last generated image to path. Only invoked on an explicit
// user action.
func (s *qrService) Save(path string) error {
	if len(s.state.Image) == 0 {
		return errors.WithStack(faults.NewValidationError("no QR image has been generated yet"))
	}

	if err := os.WriteFile(path, s.state.Image, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write QR image to %s", path)
	}

	return nil
}

func (s *qrService) State() usecase.QRState {
	return s.state
}

func (s *qrService) validateInput(input usecase.GenerateQRInput) error {
	// gt=0 lets +Inf through, so finiteness is checked explicitly.
	if math.IsInf(input.Amount, 0) || math.IsNaN(input.Amount) {
		return errors.WithStack(faults.NewValidationError("Please enter a valid positive amount."))
	}

	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if fieldErrs[0].Field() == "Name" {
				return errors.WithStack(faults.NewValidationError("Please enter both name and amount."))
			}

			return errors.WithStack(faults.NewValidationError("Please enter a valid positive amount."))
		}

		return errors.WithStack(faults.NewValidationError(err.Error()))
	}

	return nil
}
