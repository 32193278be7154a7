package catalog

import (
	"context"
	"errors"

	"github.com/labellecuisine/ordering-backend/pkg/db/models"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository wires menu item persistence over GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every menu item ordered by category then id, so grouped
// views render in a stable order.
func (r *Repository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Order("category, id").
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory returns the items in one category ordered by id.
func (r *Repository) ListByCategory(ctx context.Context, category enums.MenuCategory) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID loads a single menu item.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, err
	}
	return &item, nil
}
