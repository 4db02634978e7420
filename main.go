package main

import (
	"log"
	"os"

	"github.com/Shishir-Zaman/GoodFinds/config"
	"github.com/Shishir-Zaman/GoodFinds/handlers"
	"github.com/Shishir-Zaman/GoodFinds/middleware"
	"github.com/Shishir-Zaman/GoodFinds/models"
	"github.com/Shishir-Zaman/GoodFinds/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer config.CloseDatabase(db)

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if cfg.SeedDemoData {
		config.SeedUsers(db)
		config.SeedProducts(db)
	}

	if err := os.MkdirAll("./uploads/products", 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "GoodFinds Backend",
		ServerHeader: "GoodFinds Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Static folder for uploaded images
	app.Static("/uploads", "./uploads")

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	setupRoutes(app, db)

	// 404 fallthrough, registered after every route
	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func setupRoutes(app *fiber.App, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db)
	productHandler := handlers.NewProductHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	userHandler := handlers.NewUserHandler(db)
	uploadHandler := handlers.NewUploadHandler()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// "/categories" must precede "/:id"
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

	// "/sellers" must precede "/:id"
	users := api.Group("/users")
	users.Get("/sellers", userHandler.GetSellers)
	users.Get("/", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.GetAllUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/:id/products", userHandler.GetUserProducts)
	users.Put("/:id/verify", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.VerifyUser)
	users.Put("/:id", utils.AuthMiddleware, userHandler.UpdateProfile)
	users.Delete("/:id", utils.AuthMiddleware, middleware.RequireRole(models.RoleAdmin), userHandler.DeleteUser)

	api.Post("/upload", utils.AuthMiddleware, uploadHandler.UploadImage)
}
