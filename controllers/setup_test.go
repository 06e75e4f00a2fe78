package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/storefront-api/controllers"
	"github.com/yeremiapane/storefront-api/dto"
	"github.com/yeremiapane/storefront-api/models"
	"github.com/yeremiapane/storefront-api/repositories"
	"github.com/yeremiapane/storefront-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupRouter(customerRepo repositories.CustomerRepository, orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *gin.Engine {
	utils.InitLogger()
	dto.RegisterValidators()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	customerCtrl := controllers.NewCustomerController(customerRepo, productRepo)
	orderCtrl := controllers.NewOrderController(orderRepo)
	productCtrl := controllers.NewProductController(productRepo, customerRepo)

	customers := r.Group("/api/customer")
	customers.GET("", customerCtrl.GetAllCustomers)
	customers.GET("/:id", customerCtrl.GetCustomerByID)
	customers.POST("", customerCtrl.CreateCustomer)
	customers.PUT("/:id", customerCtrl.UpdateCustomer)
	customers.DELETE("/:id", customerCtrl.DeleteCustomer)
	customers.GET("/:id/orders", customerCtrl.GetOrdersForCustomer)
	customers.GET("/:id/products", customerCtrl.GetProductsForCustomer)
	customers.POST("/:id/products/:productId", customerCtrl.AddProductToCustomer)
	customers.DELETE("/:id/products/:productId", customerCtrl.RemoveProductFromCustomer)

	orders := r.Group("/api/order")
	orders.GET("", orderCtrl.GetAllOrders)
	orders.GET("/:id", orderCtrl.GetOrderByID)
	orders.POST("", orderCtrl.CreateOrder)
	orders.PUT("/:id", orderCtrl.UpdateOrder)
	orders.DELETE("/:id", orderCtrl.DeleteOrder)

	products := r.Group("/api/product")
	products.GET("", productCtrl.GetAllProducts)
	products.GET("/:id", productCtrl.GetProductByID)
	products.POST("", productCtrl.CreateProduct)
	products.PUT("/:id", productCtrl.UpdateProduct)
	products.DELETE("/:id", productCtrl.DeleteProduct)
	products.GET("/:id/customers", productCtrl.GetCustomersForProduct)
	products.POST("/:id/customers/:customerId", productCtrl.AddCustomerToProduct)
	products.DELETE("/:id/customers/:customerId", productCtrl.RemoveCustomerFromProduct)

	return r
}

func setupGormRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := setupTestDB(t)
	r := setupRouter(
		repositories.NewGormCustomerRepository(db),
		repositories.NewGormOrderRepository(db),
		repositories.NewGormProductRepository(db),
	)
	return r, db
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
