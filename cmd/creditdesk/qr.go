package main

import (
	"context"
	"fmt"
	"os"

	"creditdesk/internal/domain/faults"
	"creditdesk/internal/usecase"
	"creditdesk/internal/usecase/impl"
)

func runQR(ctx context.Context, name string, amount float64, out string) error {
	deskApp, err := newApp()
	if err != nil {
		return err
	}

	qr := impl.NewQRService(deskApp.directory, deskApp.logger)
	if _, err := qr.Generate(ctx, usecase.GenerateQRInput{Name: name, Amount: amount}); err != nil {
		fmt.Fprintln(os.Stderr, faults.UserMessage(err))

		return err
	}

	if err := qr.Save(out); err != nil {
		return err
	}

	fmt.Printf("QR image saved to %s\n", out)

	return nil
}
