package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProductFilter is the typed predicate set for catalog browsing. Every
// filter is applied as a bound parameter; no query text is ever built from
// user input.
type ProductFilter struct {
	Category  string
	Search    string
	SellerID  uint
	Condition string
	Sort      string
}

// ProductFilterFromQuery reads the supported query parameters.
func ProductFilterFromQuery(c *fiber.Ctx) ProductFilter {
	sellerID, _ := strconv.Atoi(c.Query("seller_id"))
	return ProductFilter{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SellerID:  uint(sellerID),
		Condition: c.Query("condition"),
		Sort:      c.Query("sort"),
	}
}

// Apply adds the filter predicates and ordering to a product query that
// already joins sellers (aliased "sellers") and categories.
func (f ProductFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("categories.name = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("(products.name LIKE ? OR products.description LIKE ? OR sellers.name LIKE ?)", like, like, like)
	}
	if f.SellerID != 0 {
		query = query.Where("products.seller_id = ?", f.SellerID)
	}
	if f.Condition != "" {
		query = query.Where("products.condition_status = ?", f.Condition)
	}
	return query.Order(f.orderClause())
}

func (f ProductFilter) orderClause() string {
	switch f.Sort {
	case "price_asc":
		return "products.price ASC"
	case "price_desc":
		return "products.price DESC"
	case "date_asc":
		return "products.created_at ASC"
	case "date_desc":
		return "products.created_at DESC"
	case "age_asc":
		// youngest items first: most recent purchase date on top
		return "products.purchase_date DESC"
	case "age_desc":
		return "products.purchase_date ASC"
	default:
		return "products.created_at DESC"
	}
}
