package handlers

import (
	"log"
	"strconv"

	"github.com/Shishir-Zaman/GoodFinds/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetAllUsers - GET /api/users (admin)
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	err := h.DB.Select("id, name, email, role, is_verified, created_at").
		Where("role <> ?", models.RoleAdmin).
		Find(&users).Error
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch users"})
	}

	return c.JSON(fiber.Map{"data": users})
}

// GetSellers - GET /api/users/sellers
func (h *UserHandler) GetSellers(c *fiber.Ctx) error {
	var sellers []models.User
	err := h.DB.Select("id, name, role, is_verified").
		Where("role = ?", models.RoleSeller).
		Find(&sellers).Error
	if err != nil {
		log.Printf("Failed to list sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sellers"})
	}

	return c.JSON(fiber.Map{"data": sellers})
}

// GetUser - GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var user models.User
	err := h.DB.Select("id, name, email, role, is_verified, created_at").
		First(&user, id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"data": user})
}

// GetUserProducts - GET /api/users/:id/products
func (h *UserHandler) GetUserProducts(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var products []ProductView
	err := productQuery(h.DB).
		Where("products.seller_id = ?", id).
		Order("products.created_at DESC").
		Scan(&products).Error
	if err != nil {
		log.Printf("Failed to fetch products for user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products})
}

// UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateProfile - PUT /api/users/:id
//
// A user may only update their own profile.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}
	if userID != uint(id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.DB.Save(&user).Error; err != nil {
		log.Printf("Failed to update profile for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully", "data": user})
}

// VerifyUser - PUT /api/users/:id/verify (admin)
func (h *UserHandler) VerifyUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		IsVerified bool `json:"is_verified"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := h.DB.Model(&user).Update("is_verified", req.IsVerified).Error; err != nil {
		log.Printf("Failed to verify user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update user"})
	}

	return c.JSON(fiber.Map{"message": "User verification status updated"})
}

// DeleteUser - DELETE /api/users/:id (admin)
//
// Hard delete. The FK cascades remove the user's products, their orders as
// a buyer, and every order item hanging off either.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		log.Printf("Failed to delete user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
