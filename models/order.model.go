package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. The current policy is permissive: any known status may be set
// regardless of the current one, matching how sellers and admins use the
// dashboard today. Tightening the lifecycle (pending-only one-way moves)
// only requires changing this function; callers already route every status
// write through it.
func CanTransition(from, to OrderStatus) bool {
	return from.Valid() && to.Valid()
}

// Order is one checkout event: a header row owning its item rows.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	BuyerID     uint        `gorm:"index;not null" json:"buyer_id"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Buyer User        `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

// OrderItem is one product entry within an order. Price is the amount the
// buyer saw at checkout, captured once and never re-read from the product
// row afterwards.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
