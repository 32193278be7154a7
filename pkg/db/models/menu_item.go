package models

import (
	"time"

	"github.com/labellecuisine/ordering-backend/pkg/enums"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// MenuItem is one orderable dish or drink of the catalog. Rows are written
// by migrations only; the application never mutates them at runtime.
type MenuItem struct {
	ID          int                `gorm:"primaryKey" json:"id"`
	Name        string             `gorm:"not null" json:"name"`
	Description string             `gorm:"not null" json:"description"`
	Price       types.Money        `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string             `gorm:"not null" json:"image"`
	Category    enums.MenuCategory `gorm:"not null;index" json:"category"`
	Tags        types.DietaryTags  `gorm:"type:text" json:"tags"`
	CreatedAt   time.Time          `json:"-"`
	UpdatedAt   time.Time          `json:"-"`
}

// TableName pins the table used by the catalog migrations.
func (MenuItem) TableName() string {
	return "menu_items"
}
