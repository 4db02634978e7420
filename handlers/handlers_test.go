package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/Shishir-Zaman/GoodFinds/middleware"
	"github.com/Shishir-Zaman/GoodFinds/models"
	"github.com/Shishir-Zaman/GoodFinds/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB opens a private in-memory database with foreign keys
// enforced, so the FK cascades behave like the production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

// newTestApp wires the API routes exactly as main does.
func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	authHandler := NewAuthHandler(db)
	productHandler := NewProductHandler(db)
	categoryHandler := NewCategoryHandler(db)
	orderHandler := NewOrderHandler(db)
	userHandler := NewUserHandler(db)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	products := api.Group("/products")
	products.Get("/categories", categoryHandler.GetCategories)
	products.Get("/", productHandler.GetAllProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", utils.AuthMiddleware, middleware.RequireRole(models.RoleSeller), productHandler.CreateProduct)
	products.Put("/:id/verify", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), productHandler.VerifyProduct)
	products.Put("/:id", utils.AuthMiddleware, middleware.RequireRole(models.RoleSeller), productHandler.UpdateProduct)
	products.Delete("/:id", utils.AuthMiddleware, middleware.RequireRole(models.RoleSeller), productHandler.DeleteProduct)

	orders := api.Group("/orders")
	orders.Get("/", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), orderHandler.GetAllOrders)
	orders.Get("/buyer/:id", utils.AuthMiddleware, orderHandler.GetOrdersByBuyer)
	orders.Get("/seller/:id", utils.AuthMiddleware, orderHandler.GetOrdersBySeller)
	orders.Get("/:id", utils.AuthMiddleware, orderHandler.GetOrder)
	orders.Post("/", utils.AuthMiddleware, orderHandler.CreateOrder)
	orders.Put("/:id", utils.AuthMiddleware, orderHandler.UpdateOrderStatus)
	orders.Delete("/:id", utils.AuthMiddleware, orderHandler.DeleteOrder)

	users := api.Group("/users")
	users.Get("/sellers", userHandler.GetSellers)
	users.Get("/", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.GetAllUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/:id/products", userHandler.GetUserProducts)
	users.Put("/:id/verify", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.VerifyUser)
	users.Put("/:id", utils.AuthMiddleware, userHandler.UpdateProfile)
	users.Delete("/:id", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.DeleteUser)

	return app
}

func performRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func createUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	user := models.User{Name: name, Email: email, Password: "irrelevant", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, seller models.User, category models.Category, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		SellerID:        seller.ID,
		CategoryID:      category.ID,
		Name:            name,
		Price:           price,
		ConditionStatus: models.ConditionGood,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
