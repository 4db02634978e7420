package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/Shishir-Zaman/GoodFinds/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// ProductView is a listing row joined with seller and category display data.
type ProductView struct {
	models.Product
	SellerName     string `json:"seller_name"`
	SellerVerified bool   `json:"seller_verified"`
	CategoryName   string `json:"category_name"`
}

// CreateProductRequest
type CreateProductRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	ConditionStatus string  `json:"condition_status"`
	CategoryID      uint    `json:"category_id"`
	ImageURL        string  `json:"image_url"`
	PurchaseDate    string  `json:"purchase_date"` // YYYY-MM-DD
}

func productQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{}).
		Select("products.*, sellers.name AS seller_name, sellers.is_verified AS seller_verified, categories.name AS category_name").
		Joins("JOIN users AS sellers ON sellers.id = products.seller_id").
		Joins("JOIN categories ON categories.id = products.category_id")
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	filter := ProductFilterFromQuery(c)

	var products []ProductView
	if err := filter.Apply(productQuery(h.DB)).Scan(&products).Error; err != nil {
		log.Printf("Failed to list products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var products []ProductView
	if err := productQuery(h.DB).Where("products.id = ?", id).Scan(&products).Error; err != nil {
		log.Printf("Failed to fetch product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.JSON(fiber.Map{"data": products[0]})
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	sellerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	if req.Name == "" || req.Price <= 0 || req.CategoryID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, price and category are required"})
	}

	condition := req.ConditionStatus
	if condition == "" {
		condition = models.ConditionGood
	}
	if !models.ValidCondition(condition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid condition"})
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase date"})
		}
		purchaseDate = parsed
	}

	product := models.Product{
		SellerID:        sellerID,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ConditionStatus: condition,
		ImageURL:        req.ImageURL,
		IsAuthentic:     false, // only an admin can mark authenticity
		PurchaseDate:    purchaseDate,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		log.Printf("Failed to create product for seller %d: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product created successfully",
		"product_id": product.ID,
	})
}

// UpdateProduct - PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	sellerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	// Check ownership
	if product.SellerID != sellerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	}

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.ConditionStatus != "" && !models.ValidCondition(req.ConditionStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid condition"})
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.ConditionStatus != "" {
		product.ConditionStatus = req.ConditionStatus
	}
	if req.CategoryID != 0 {
		product.CategoryID = req.CategoryID
	}
	product.ImageURL = req.ImageURL
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase date"})
		}
		product.PurchaseDate = parsed
	}

	if err := h.DB.Save(&product).Error; err != nil {
		log.Printf("Failed to update product %d: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated successfully", "data": product})
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	sellerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	// Check ownership
	if product.SellerID != sellerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		log.Printf("Failed to delete product %d: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// VerifyProduct - PUT /api/products/:id/verify (admin)
func (h *ProductHandler) VerifyProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		IsAuthentic bool `json:"is_authentic"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.DB.Model(&product).Update("is_authentic", req.IsAuthentic).Error; err != nil {
		log.Printf("Failed to verify product %d: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}

	return c.JSON(fiber.Map{"message": "Product verification status updated"})
}
