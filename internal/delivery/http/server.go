package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"creditdesk/config"
	"creditdesk/internal/delivery"
	"creditdesk/internal/delivery/http/router"
	"creditdesk/internal/delivery/http/validator"
	deliverymiddleware "creditdesk/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the stub API server.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	if params.Config.Stub == nil {
		return nil, errors.New("stub config is required to run the stub server")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Config.Stub.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.Stub.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.Stub.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.Stub.Timeouts.IdleTimeout

	echoServer.Use(middleware.Recover())
	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.BodyLimit(params.Config.Stub.MaxRequestBodySize))
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Stub.Port))
	s.logger.Info("Starting stub API server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve stub API")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down stub API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
