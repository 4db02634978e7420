package models

import "time"

// Condition grades for second-hand listings.
const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

type Product struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SellerID   uint `gorm:"index;not null" json:"seller_id"`
	CategoryID uint `gorm:"index;not null" json:"category_id"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ConditionStatus string  `gorm:"type:varchar(20);default:'good'" json:"condition_status"` // new, like_new, good, fair, poor
	ImageURL        string  `gorm:"type:text" json:"image_url"`

	// Admin-controlled trust signal, never settable by the seller.
	IsAuthentic bool `gorm:"default:false" json:"is_authentic"`

	PurchaseDate time.Time `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Seller   User     `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidCondition reports whether cond is a known condition grade.
func ValidCondition(cond string) bool {
	switch cond {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}
