package config

import (
	"log"
	"time"

	"github.com/Shishir-Zaman/GoodFinds/models"
	"github.com/Shishir-Zaman/GoodFinds/utils"

	"gorm.io/gorm"
)

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Electronics", ImageURL: "https://images.pexels.com/photos/356056/pexels-photo-356056.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{Name: "Clothing", ImageURL: "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{Name: "Furniture", ImageURL: "https://images.pexels.com/photos/1350789/pexels-photo-1350789.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{Name: "Toys", ImageURL: "https://images.pexels.com/photos/163036/mario-luigi-yoschi-figures-163036.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{Name: "Books", ImageURL: "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{Name: "Sports", ImageURL: "https://images.pexels.com/photos/209977/pexels-photo-209977.jpeg?auto=compress&cs=tinysrgb&w=400"},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("name = ?", category.Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Failed to seed category %s: %v", category.Name, err)
			}
		}
	}
}

func SeedUsers(db *gorm.DB) {
	log.Println("🌱 Seeding users...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Name:       "System Administrator",
			Email:      "admin@example.com",
			Password:   password,
			Role:       models.RoleAdmin,
			IsVerified: true,
		},
		{
			Name:       "Aarong",
			Email:      "aarong@example.com",
			Password:   password,
			Role:       models.RoleSeller,
			IsVerified: true,
		},
		{
			Name:       "Walton",
			Email:      "walton@example.com",
			Password:   password,
			Role:       models.RoleSeller,
			IsVerified: true,
		},
		{
			Name:       "RetroFinds BD",
			Email:      "retrofinds@example.com",
			Password:   password,
			Role:       models.RoleSeller,
			IsVerified: false,
		},
		{
			Name:     "Demo Buyer",
			Email:    "buyer@example.com",
			Password: password,
			Role:     models.RoleBuyer,
		},
	}

	for _, user := range users {
		var existingUser models.User
		if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					log.Printf("Failed to seed user %s: %v", user.Name, err)
				} else {
					log.Printf("User seeded: %s (ID: %d)", user.Name, user.ID)
				}
			}
		} else {
			log.Printf("User already exists: %s", user.Name)
		}
	}

	log.Println("✅ Seeding complete.")
}

func SeedProducts(db *gorm.DB) {
	log.Println("🌱 Seeding products...")

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Products already exist, skipping.")
		return
	}

	sellerByEmail := func(email string) uint {
		var user models.User
		if err := db.Where("email = ? AND role = ?", email, models.RoleSeller).First(&user).Error; err != nil {
			return 0
		}
		return user.ID
	}
	categoryByName := func(name string) uint {
		var category models.Category
		if err := db.Where("name = ?", name).First(&category).Error; err != nil {
			return 0
		}
		return category.ID
	}

	now := time.Now()
	products := []models.Product{
		{
			SellerID:        sellerByEmail("walton@example.com"),
			CategoryID:      categoryByName("Electronics"),
			Name:            "Walton Smart TV 43\"",
			Description:     "43-inch Full HD Smart TV. Excellent picture quality with built-in apps.",
			Price:           32000,
			ConditionStatus: models.ConditionLikeNew,
			IsAuthentic:     true,
			PurchaseDate:    now.AddDate(-1, 0, 0),
		},
		{
			SellerID:        sellerByEmail("aarong@example.com"),
			CategoryID:      categoryByName("Clothing"),
			Name:            "Aarong Cotton Saree",
			Description:     "Beautiful handwoven cotton saree. Traditional Bangladeshi design.",
			Price:           3500,
			ConditionStatus: models.ConditionNew,
			IsAuthentic:     true,
			PurchaseDate:    now.AddDate(0, -4, 0),
		},
		{
			SellerID:        sellerByEmail("retrofinds@example.com"),
			CategoryID:      categoryByName("Furniture"),
			Name:            "Vintage Teak Bookshelf",
			Description:     "Solid teak bookshelf from the 80s. Minor scratches, very sturdy.",
			Price:           7500,
			ConditionStatus: models.ConditionGood,
			PurchaseDate:    now.AddDate(-6, 0, 0),
		},
	}

	for _, product := range products {
		if product.SellerID == 0 || product.CategoryID == 0 {
			continue
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", product.Name, err)
		}
	}

	log.Println("✅ Product seeding complete.")
}
