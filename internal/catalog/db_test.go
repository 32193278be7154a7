package catalog

import (
	"testing"

	"github.com/labellecuisine/ordering-backend/pkg/db/models"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	"github.com/labellecuisine/ordering-backend/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.MenuItem{}); err != nil {
		t.Fatalf("migrate menu_items: %v", err)
	}
	return conn
}

func seedTestMenu(t *testing.T, tx *gorm.DB) {
	t.Helper()

	items := []models.MenuItem{
		{ID: 1, Name: "French Onion Soup", Description: "Gratinéed with Gruyère", Price: types.MustMoney("12"), Image: "/images/onion-soup.jpg", Category: enums.MenuCategoryStarters, Tags: types.DietaryTags{enums.DietaryTagVegetarian}},
		{ID: 2, Name: "Escargots de Bourgogne", Description: "Garlic herb butter", Price: types.MustMoney("16"), Image: "/images/escargots.jpg", Category: enums.MenuCategoryStarters},
		{ID: 7, Name: "Coq au Vin", Description: "Braised in red wine", Price: types.MustMoney("32"), Image: "/images/coq-au-vin.jpg", Category: enums.MenuCategoryMains},
		{ID: 13, Name: "Crème Brûlée", Description: "Vanilla bean custard", Price: types.MustMoney("11"), Image: "/images/creme-brulee.jpg", Category: enums.MenuCategoryDesserts, Tags: types.DietaryTags{enums.DietaryTagVegetarian, enums.DietaryTagGlutenFree}},
	}
	if err := tx.Create(&items).Error; err != nil {
		t.Fatalf("seed menu items: %v", err)
	}
}
