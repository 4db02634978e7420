package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/Shishir-Zaman/GoodFinds/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// OrderItemRequest is one checkout line: the product and the price the
// buyer saw. The price is stored as-is — it is a snapshot of the checkout
// moment, not re-read from the product row.
type OrderItemRequest struct {
	ID       uint    `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateOrderRequest struct {
	BuyerID     uint               `json:"buyer_id"`
	Items       []OrderItemRequest `json:"items"`
	TotalAmount float64            `json:"total_amount"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// OrderView is an order header joined with the buyer's display name, plus
// the item list where the endpoint includes one.
type OrderView struct {
	ID          uint               `json:"id"`
	BuyerID     uint               `json:"buyer_id"`
	TotalAmount float64            `json:"total_amount"`
	Status      models.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	BuyerName   string             `json:"buyer_name"`
	Items       []OrderItemView    `gorm:"-" json:"items,omitempty"`
}

type OrderItemView struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url,omitempty"`
	SellerID    uint    `json:"seller_id"`
	SellerName  string  `json:"seller_name,omitempty"`
}

// CreateOrder - POST /api/orders
//
// Places an order as one atomic write: the header row plus every item row
// commit together or not at all. An empty item list is rejected before the
// transaction is opened.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No items in order"})
	}

	order := models.Order{
		BuyerID:     req.BuyerID,
		TotalAmount: req.TotalAmount,
		Status:      models.OrderStatusPending,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			line := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ID,
				Quantity:  quantity,
				Price:     item.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("Failed to place order for buyer %d: %v", req.BuyerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to place order"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order placed successfully",
		"order_id": order.ID,
	})
}

// GetAllOrders - GET /api/orders (admin)
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	var orders []OrderView
	err := h.DB.Model(&models.Order{}).
		Select("orders.*, users.name AS buyer_name").
		Joins("JOIN users ON users.id = orders.buyer_id").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		log.Printf("Failed to list orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	return c.JSON(fiber.Map{"data": orders})
}

// GetOrder - GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var orders []OrderView
	err := h.DB.Model(&models.Order{}).
		Select("orders.*, users.name AS buyer_name").
		Joins("JOIN users ON users.id = orders.buyer_id").
		Where("orders.id = ?", id).
		Scan(&orders).Error
	if err != nil {
		log.Printf("Failed to fetch order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch order"})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	order := orders[0]
	err = h.DB.Model(&models.OrderItem{}).
		Select("order_items.*, products.name AS product_name, products.seller_id AS seller_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", order.ID).
		Scan(&order.Items).Error
	if err != nil {
		log.Printf("Failed to fetch items for order %d: %v", order.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch order"})
	}

	return c.JSON(fiber.Map{"data": order})
}

// GetOrdersByBuyer - GET /api/orders/buyer/:id
//
// Buyer projection: every order the buyer placed, with the full basket —
// each item joined to product name, image and the selling seller.
func (h *OrderHandler) GetOrdersByBuyer(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var orders []OrderView
	err := h.DB.Model(&models.Order{}).
		Select("orders.*, users.name AS buyer_name").
		Joins("JOIN users ON users.id = orders.buyer_id").
		Where("orders.buyer_id = ?", id).
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		log.Printf("Failed to fetch orders for buyer %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	for i := range orders {
		err := h.DB.Model(&models.OrderItem{}).
			Select("order_items.*, products.name AS product_name, products.image_url AS image_url, products.seller_id AS seller_id, sellers.name AS seller_name").
			Joins("JOIN products ON products.id = order_items.product_id").
			Joins("JOIN users AS sellers ON sellers.id = products.seller_id").
			Where("order_items.order_id = ?", orders[i].ID).
			Scan(&orders[i].Items).Error
		if err != nil {
			log.Printf("Failed to fetch items for order %d: %v", orders[i].ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
		}
	}

	return c.JSON(fiber.Map{"data": orders})
}

// GetOrdersBySeller - GET /api/orders/seller/:id
//
// Seller projection: orders containing at least one of the seller's
// products, de-duplicated at the order level. Each order carries only this
// seller's items — lines sold by other sellers in the same order are never
// included.
func (h *OrderHandler) GetOrdersBySeller(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var orders []OrderView
	err := h.DB.Model(&models.Order{}).
		Select("DISTINCT orders.*, users.name AS buyer_name").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN users ON users.id = orders.buyer_id").
		Where("products.seller_id = ?", id).
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		log.Printf("Failed to fetch orders for seller %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	for i := range orders {
		err := h.DB.Model(&models.OrderItem{}).
			Select("order_items.*, products.name AS product_name, products.seller_id AS seller_id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("order_items.order_id = ? AND products.seller_id = ?", orders[i].ID, id).
			Scan(&orders[i].Items).Error
		if err != nil {
			log.Printf("Failed to fetch items for order %d: %v", orders[i].ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
		}
	}

	return c.JSON(fiber.Map{"data": orders})
}

// UpdateOrderStatus - PUT /api/orders/:id
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order status"})
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if !models.CanTransition(order.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Illegal status transition"})
	}

	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		log.Printf("Failed to update status of order %d: %v", order.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update order"})
	}

	return c.JSON(fiber.Map{"message": "Order status updated successfully"})
}

// DeleteOrder - DELETE /api/orders/:id
//
// Hard delete; the items go with the order via the FK cascade.
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if err := h.DB.Delete(&order).Error; err != nil {
		log.Printf("Failed to delete order %d: %v", order.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete order"})
	}

	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
