package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yeremiapane/storefront-api/config"
	"github.com/yeremiapane/storefront-api/controllers"
	"github.com/yeremiapane/storefront-api/docs"
	"github.com/yeremiapane/storefront-api/dto"
	"github.com/yeremiapane/storefront-api/middlewares"
	"github.com/yeremiapane/storefront-api/repositories"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	dto.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())

	// Apply middlewares
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigins()))
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())

	customerRepo := repositories.NewGormCustomerRepository(db)
	orderRepo := repositories.NewGormOrderRepository(db)
	productRepo := repositories.NewGormProductRepository(db)

	customerCtrl := controllers.NewCustomerController(customerRepo, productRepo)
	orderCtrl := controllers.NewOrderController(orderRepo)
	productCtrl := controllers.NewProductController(productRepo, customerRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = "/api"
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")

	customers := api.Group("/customer")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.GET("/:id", customerCtrl.GetCustomerByID)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.PUT("/:id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:id", customerCtrl.DeleteCustomer)

		customers.GET("/:id/orders", customerCtrl.GetOrdersForCustomer)
		customers.GET("/:id/products", customerCtrl.GetProductsForCustomer)
		customers.POST("/:id/products/:productId", customerCtrl.AddProductToCustomer)
		customers.DELETE("/:id/products/:productId", customerCtrl.RemoveProductFromCustomer)
	}

	orders := api.Group("/order")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.POST("", orderCtrl.CreateOrder)
		orders.PUT("/:id", orderCtrl.UpdateOrder)
		orders.DELETE("/:id", orderCtrl.DeleteOrder)
	}

	products := api.Group("/product")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.GET("/:id", productCtrl.GetProductByID)
		products.POST("", productCtrl.CreateProduct)
		products.PUT("/:id", productCtrl.UpdateProduct)
		products.DELETE("/:id", productCtrl.DeleteProduct)

		products.GET("/:id/customers", productCtrl.GetCustomersForProduct)
		products.POST("/:id/customers/:customerId", productCtrl.AddCustomerToProduct)
		products.DELETE("/:id/customers/:customerId", productCtrl.RemoveCustomerFromProduct)
	}

	return r
}
