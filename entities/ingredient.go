package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID     uint      `gorm:"primarykey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name   string    `json:"name"`

	User    *User     `gorm:"foreignKey:UserID"`
	Recipes []*Recipe `gorm:"many2many:recipe_ingredients"`
	Timestamp
}
