// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aeon/internal/delivery/api/middleware"
	"aeon/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
	StatsHandler    *handler.StatsHandler
	SystemHandler   *handler.SystemHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	productHandler  *handler.ProductHandler
	customerHandler *handler.CustomerHandler
	orderHandler    *handler.OrderHandler
	statsHandler    *handler.StatsHandler
	systemHandler   *handler.SystemHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		productHandler:  params.ProductHandler,
		customerHandler: params.CustomerHandler,
		orderHandler:    params.OrderHandler,
		statsHandler:    params.StatsHandler,
		systemHandler:   params.SystemHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Static segments such as /orders/stats take precedence over /orders/:id.
func (r *router) RegisterRoutes(e *echo.Echo) {
	public := e.Group("/api")
	{
		public.GET("/health", r.systemHandler.Health)
		public.POST("/login", r.userHandler.Login)
		public.POST("/register", r.userHandler.Register)
	}

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	brands := api.Group("/brands")
	{
		brands.GET("", r.catalogHandler.ListBrands)
		brands.POST("", r.catalogHandler.CreateBrand)
		brands.PUT("/:id", r.catalogHandler.UpdateBrand)
		brands.DELETE("/:id", r.catalogHandler.DeleteBrand)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", r.catalogHandler.ListCategories)
		categories.POST("", r.catalogHandler.CreateCategory)
		categories.PUT("/:id", r.catalogHandler.UpdateCategory)
		categories.DELETE("/:id", r.catalogHandler.DeleteCategory)
	}

	products := api.Group("/product")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/search", r.productHandler.SearchProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
		products.GET("/:id/details", r.productHandler.ListDetails)
		products.POST("/:id/details", r.productHandler.CreateDetail)
	}

	details := api.Group("/product-details")
	{
		details.PUT("/:id", r.productHandler.UpdateDetail)
		details.DELETE("/:id", r.productHandler.DeleteDetail)
	}

	api.GET("/users", r.userHandler.ListUsers)

	customers := api.Group("/customers")
	{
		customers.GET("", r.customerHandler.ListCustomers)
		customers.POST("", r.customerHandler.CreateCustomer)
		customers.PUT("/:id", r.customerHandler.UpdateCustomer)
		customers.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/customer/:customerId", r.orderHandler.ListCustomerOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.POST("", r.orderHandler.CreateOrder)
		orders.PUT("/:id", r.orderHandler.UpdateOrder)
		orders.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	api.GET("/payment-methods", r.systemHandler.PaymentMethods)

	api.GET("/orders/stats", r.statsHandler.Orders())
	api.GET("/customers/stats", r.statsHandler.Customers())
	api.GET("/products/stats", r.statsHandler.Products())
	api.GET("/users/stats", r.statsHandler.Users())
	api.GET("/inventory/stats", r.statsHandler.Inventory())
	api.GET("/dashboard/stats", r.statsHandler.Dashboard())
}
