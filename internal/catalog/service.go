package catalog

import (
	"context"
	"fmt"

	"github.com/labellecuisine/ordering-backend/pkg/db/models"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
)

// Section is one category block of the menu, in presentation order.
type Section struct {
	Category enums.MenuCategory `json:"category"`
	Label    string             `json:"label"`
	Items    []models.MenuItem  `json:"items"`
}

// Service exposes read access to the menu catalog.
type Service interface {
	Menu(ctx context.Context) ([]Section, error)
	Category(ctx context.Context, name string) (*Section, error)
	Item(ctx context.Context, id int) (*models.MenuItem, error)
}

type itemLister interface {
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category enums.MenuCategory) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int) (*models.MenuItem, error)
}

type service struct {
	repo itemLister
}

// NewService builds the catalog service.
func NewService(repo itemLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// Menu returns every category section in fixed presentation order. Sections
// with no items still appear, so the menu shape is stable.
func (s *service) Menu(ctx context.Context) ([]Section, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}

	grouped := make(map[enums.MenuCategory][]models.MenuItem, len(enums.MenuCategories()))
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	sections := make([]Section, 0, len(enums.MenuCategories()))
	for _, category := range enums.MenuCategories() {
		section := Section{
			Category: category,
			Label:    category.Label(),
			Items:    grouped[category],
		}
		if section.Items == nil {
			section.Items = []models.MenuItem{}
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// Category returns one section by its category name.
func (s *service) Category(ctx context.Context, name string) (*Section, error) {
	category, err := enums.ParseMenuCategory(name)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown menu category")
	}

	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list category items")
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return &Section{Category: category, Label: category.Label(), Items: items}, nil
}

// Item loads one menu item by id.
func (s *service) Item(ctx context.Context, id int) (*models.MenuItem, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}
