package types

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/labellecuisine/ordering-backend/pkg/enums"
)

// DietaryTags stores a menu item's tag set as a comma-joined column while
// presenting a JSON array on the wire.
type DietaryTags []enums.DietaryTag

// Value joins the tags into a single text column.
func (t DietaryTags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(t))
	for _, tag := range t {
		if !tag.IsValid() {
			return nil, fmt.Errorf("dietary tags: invalid tag %q", tag)
		}
		parts = append(parts, tag.String())
	}
	return strings.Join(parts, ","), nil
}

// Scan splits the stored column back into the tag set. Unknown tags are
// rejected rather than silently kept.
func (t *DietaryTags) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("dietary tags: unsupported scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make(DietaryTags, 0, len(parts))
	for _, part := range parts {
		tag, err := enums.ParseDietaryTag(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("dietary tags: %w", err)
		}
		tags = append(tags, tag)
	}
	*t = tags
	return nil
}
