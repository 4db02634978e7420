package models

import "time"

// Roles a user can hold. Buyers and sellers self-register; the admin
// account is created by the seeder.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"unique;not null;size:255" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Role       string `gorm:"type:varchar(20);default:'buyer';index" json:"role"` // buyer, seller, admin
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one a user may self-assign at
// registration. Admin accounts are never created through the API.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}
