package enums

import "fmt"

// DietaryTag labels a menu item for guests with dietary preferences.
type DietaryTag string

const (
	DietaryTagVegetarian DietaryTag = "vegetarian"
	DietaryTagGlutenFree DietaryTag = "gluten-free"
	DietaryTagSpicy      DietaryTag = "spicy"
	DietaryTagSeasonal   DietaryTag = "seasonal"
)

var validDietaryTags = []DietaryTag{
	DietaryTagVegetarian,
	DietaryTagGlutenFree,
	DietaryTagSpicy,
	DietaryTagSeasonal,
}

// String implements fmt.Stringer.
func (d DietaryTag) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DietaryTag.
func (d DietaryTag) IsValid() bool {
	for _, candidate := range validDietaryTags {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDietaryTag converts raw input into a DietaryTag.
func ParseDietaryTag(value string) (DietaryTag, error) {
	for _, candidate := range validDietaryTags {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dietary tag %q", value)
}
