package main

import (
	"context"
	"log/slog"
	"os"

	"creditdesk/config"
	"creditdesk/internal/delivery"
	"creditdesk/internal/delivery/http"
	"creditdesk/internal/delivery/http/router/handler"
	"creditdesk/internal/domain/service"
	logs "creditdesk/internal/infra/log"
	"creditdesk/internal/infra/qrcode"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the QR renderer with dependency injection
func newQRCodeService(cfg *config.Config) service.PaymentQRService {
	if cfg.Stub == nil {
		return qrcode.NewQRCodeService(256)
	}

	return qrcode.NewQRCodeService(cfg.Stub.QRSize)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
