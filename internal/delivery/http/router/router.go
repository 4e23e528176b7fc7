// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"washline/internal/delivery/http/middleware"
	"washline/internal/delivery/http/router/handler"
	"washline/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	VendorHandler  *handler.VendorHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	vendorHandler  *handler.VendorHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		vendorHandler:  params.VendorHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public identity routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	// Public vendor browsing
	e.GET("/vendors", r.vendorHandler.ListVendors)
	e.GET("/vendor/:id", r.vendorHandler.GetVendor)

	authed := r.authMiddleware.Authenticate

	// User profile routes
	e.GET("/user/:id", r.userHandler.GetUser, authed)
	e.PUT("/user/:id", r.userHandler.UpdateUser, authed)

	// Vendor management; profile creation needs the vendor role, the
	// self-ownership check on updates lives in the use case.
	e.POST("/vendor", r.vendorHandler.CreateVendor, authed, r.authMiddleware.RequireRole(entity.RoleVendor))
	e.PUT("/vendor/:id", r.vendorHandler.UpdateVendor, authed)

	// Order lifecycle
	e.POST("/order", r.orderHandler.CreateOrder, authed)
	e.GET("/orders/student/:id", r.orderHandler.ListStudentOrders, authed)
	e.GET("/orders/vendor/:id", r.orderHandler.ListVendorOrders, authed)
	e.PUT("/order/:id/status", r.orderHandler.UpdateOrderStatus, authed)

	// Reviews
	e.POST("/review", r.reviewHandler.SubmitReview, authed)
}
