// Package router contains routing and server setup for the stub HTTP
// delivery.
package router

import (
	"creditdesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	adminHandler *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		adminHandler: params.AdminHandler,
	}
}

// RegisterRoutes sets up the stubbed remote API surface. Paths match the
// real backend exactly so the client needs no stub-specific configuration.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.GET("/admin/get-users", r.adminHandler.ListUsers)
	e.GET("/get-transaction", r.adminHandler.ListTransactions)
	e.POST("/generate-qr", r.adminHandler.GenerateQR)
}
