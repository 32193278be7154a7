package enums

import "fmt"

// MenuCategory groups catalog items the way the menu page presents them.
type MenuCategory string

const (
	MenuCategoryStarters MenuCategory = "starters"
	MenuCategoryMains    MenuCategory = "mains"
	MenuCategoryDesserts MenuCategory = "desserts"
	MenuCategoryDrinks   MenuCategory = "drinks"
)

var validMenuCategories = []MenuCategory{
	MenuCategoryStarters,
	MenuCategoryMains,
	MenuCategoryDesserts,
	MenuCategoryDrinks,
}

// MenuCategories returns the categories in display order.
func MenuCategories() []MenuCategory {
	out := make([]MenuCategory, len(validMenuCategories))
	copy(out, validMenuCategories)
	return out
}

// Label returns the human-readable heading for the category.
func (m MenuCategory) Label() string {
	switch m {
	case MenuCategoryStarters:
		return "Starters"
	case MenuCategoryMains:
		return "Main Courses"
	case MenuCategoryDesserts:
		return "Desserts"
	case MenuCategoryDrinks:
		return "Drinks"
	}
	return string(m)
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts raw input into a MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}
