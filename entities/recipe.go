package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title       string    `json:"title"`
	TimeMinutes int       `json:"time_minutes"`
	Price       float64   `json:"price"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	User        *User         `gorm:"foreignKey:UserID"`
	Tags        []*Tag        `gorm:"many2many:recipe_tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients"`
	Timestamp
}
