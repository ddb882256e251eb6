// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizops/internal/delivery/http/middleware"
	"bizops/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ReturnHandler  *handler.ReturnHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	returnHandler  *handler.ReturnHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		returnHandler:  params.ReturnHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Account routes; registration is the only public one
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.RegisterUser)
		userGroup.GET("/profile", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.UpdateUser, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, r.authMiddleware.Authenticate)
	}

	// Product catalog routes; reads are public, writes require a login
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:manufacturingID", r.catalogHandler.GetProduct)
		productGroup.POST("", r.catalogHandler.CreateProduct, r.authMiddleware.Authenticate)
		productGroup.PUT("/:manufacturingID", r.catalogHandler.UpdateProduct, r.authMiddleware.Authenticate)
	}

	// Cart routes, always scoped to the authenticated user
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.PUT("/items", r.cartHandler.SetItem)
		cartGroup.DELETE("/items/:manufacturingID", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/mine", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:key", r.orderHandler.GetOrder)
		orderGroup.PUT("/:key/status", r.orderHandler.UpdateOrderStatus)
		orderGroup.GET("/:key/payments", r.paymentHandler.ListOrderPayments)
	}

	// Return routes
	returnGroup := api.Group("/returns")
	returnGroup.Use(r.authMiddleware.Authenticate)
	{
		returnGroup.POST("", r.returnHandler.RequestReturn)
		returnGroup.GET("", r.returnHandler.ListReturns)
		returnGroup.GET("/mine", r.returnHandler.ListMyReturns)
		returnGroup.GET("/:key", r.returnHandler.GetReturn)
	}

	// Payment routes
	paymentGroup := api.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("", r.paymentHandler.RecordPayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments)
		paymentGroup.GET("/:key", r.paymentHandler.GetPayment)
		paymentGroup.GET("/:key/qr", r.paymentHandler.PaymentReceiptQR)
	}
}
