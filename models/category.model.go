package models

import "time"

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null;unique" json:"name"`
	ImageURL string `gorm:"type:text" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
