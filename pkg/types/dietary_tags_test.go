package types

import (
	"testing"

	"github.com/labellecuisine/ordering-backend/pkg/enums"
)

func TestDietaryTagsRoundTrip(t *testing.T) {
	tags := DietaryTags{enums.DietaryTagVegetarian, enums.DietaryTagGlutenFree}

	value, err := tags.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if value != "vegetarian,gluten-free" {
		t.Fatalf("unexpected column value %v", value)
	}

	var scanned DietaryTags
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != enums.DietaryTagVegetarian || scanned[1] != enums.DietaryTagGlutenFree {
		t.Fatalf("round trip mismatch: %v", scanned)
	}
}

func TestDietaryTagsEmptyColumn(t *testing.T) {
	var scanned DietaryTags
	if err := scanned.Scan(""); err != nil {
		t.Fatalf("scan empty: %v", err)
	}
	if scanned != nil {
		t.Fatalf("expected nil tags, got %v", scanned)
	}
}

func TestDietaryTagsRejectUnknown(t *testing.T) {
	var scanned DietaryTags
	if err := scanned.Scan("vegetarian,deep-fried"); err == nil {
		t.Fatal("expected error for unknown tag")
	}

	bad := DietaryTags{enums.DietaryTag("deep-fried")}
	if _, err := bad.Value(); err == nil {
		t.Fatal("expected error when persisting unknown tag")
	}
}
