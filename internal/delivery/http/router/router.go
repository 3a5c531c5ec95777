// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atelier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClothingHandler *handler.ClothingHandler
	ReviewHandler   *handler.ReviewHandler
	BrandHandler    *handler.BrandHandler
	UserHandler     *handler.UserHandler
	OperatorHandler *handler.OperatorHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	VariantHandler  *handler.VariantHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	clothingHandler *handler.ClothingHandler
	reviewHandler   *handler.ReviewHandler
	brandHandler    *handler.BrandHandler
	userHandler     *handler.UserHandler
	operatorHandler *handler.OperatorHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	variantHandler  *handler.VariantHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		clothingHandler: params.ClothingHandler,
		reviewHandler:   params.ReviewHandler,
		brandHandler:    params.BrandHandler,
		userHandler:     params.UserHandler,
		operatorHandler: params.OperatorHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		variantHandler:  params.VariantHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Clothing catalog routes, with reviews nested under their parent item
	clothingGroup := apiV1.Group("/clothing")
	{
		clothingGroup.POST("", r.clothingHandler.CreateClothing)
		clothingGroup.GET("", r.clothingHandler.GetClothingItems)
		clothingGroup.GET("/:clothingId", r.clothingHandler.GetClothing)
		clothingGroup.PUT("/:clothingId", r.clothingHandler.UpdateClothing)
		clothingGroup.DELETE("/:clothingId", r.clothingHandler.DeleteClothing)

		reviewsGroup := clothingGroup.Group("/:clothingId/reviews")
		{
			reviewsGroup.POST("", r.reviewHandler.CreateReview)
			reviewsGroup.GET("", r.reviewHandler.GetReviews)
			reviewsGroup.GET("/:reviewId", r.reviewHandler.GetReview)
			reviewsGroup.PUT("/:reviewId", r.reviewHandler.UpdateReview)
			reviewsGroup.DELETE("/:reviewId", r.reviewHandler.DeleteReview)
		}
	}

	brandsGroup := apiV1.Group("/brands")
	{
		brandsGroup.POST("", r.brandHandler.CreateBrand)
		brandsGroup.GET("", r.brandHandler.GetBrands)
		brandsGroup.GET("/:brandId", r.brandHandler.GetBrand)
		brandsGroup.PUT("/:brandId", r.brandHandler.UpdateBrand)
		brandsGroup.DELETE("/:brandId", r.brandHandler.DeleteBrand)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.GetUsers)
		usersGroup.GET("/:userId", r.userHandler.GetUser)
		usersGroup.PUT("/:userId", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:userId", r.userHandler.DeleteUser)
	}

	operatorsGroup := apiV1.Group("/operators")
	{
		operatorsGroup.POST("", r.operatorHandler.CreateOperator)
		operatorsGroup.GET("", r.operatorHandler.GetOperators)
		operatorsGroup.GET("/:operatorId", r.operatorHandler.GetOperator)
		operatorsGroup.PUT("/:operatorId", r.operatorHandler.UpdateOperator)
		operatorsGroup.DELETE("/:operatorId", r.operatorHandler.DeleteOperator)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("", r.categoryHandler.GetCategories)
		categoriesGroup.GET("/:categoryId", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:categoryId", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:categoryId", r.categoryHandler.DeleteCategory)
	}

	// Product routes, with variants nested under their parent product
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("", r.productHandler.GetProducts)
		productsGroup.GET("/:productId", r.productHandler.GetProduct)
		productsGroup.PUT("/:productId", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:productId", r.productHandler.DeleteProduct)

		variantsGroup := productsGroup.Group("/:productId/variants")
		{
			variantsGroup.POST("", r.variantHandler.CreateVariant)
			variantsGroup.GET("", r.variantHandler.GetVariants)
			variantsGroup.GET("/:variantId", r.variantHandler.GetVariant)
			variantsGroup.PUT("/:variantId", r.variantHandler.UpdateVariant)
			variantsGroup.DELETE("/:variantId", r.variantHandler.DeleteVariant)
		}
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.GetOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:orderId", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:orderId", r.orderHandler.DeleteOrder)
	}
}
