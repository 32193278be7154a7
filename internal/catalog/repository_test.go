package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
)

func TestRepositoryListAllOrdersByCategoryThenID(t *testing.T) {
	db := openTestDB(t)
	seedTestMenu(t, db)
	repo := NewRepository(db)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	// desserts sorts before mains and starters lexically
	assert.Equal(t, 13, items[0].ID)
}

func TestRepositoryListByCategory(t *testing.T) {
	db := openTestDB(t)
	seedTestMenu(t, db)
	repo := NewRepository(db)

	items, err := repo.ListByCategory(context.Background(), enums.MenuCategoryStarters)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestRepositoryGetByID(t *testing.T) {
	db := openTestDB(t)
	seedTestMenu(t, db)
	repo := NewRepository(db)

	item, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Coq au Vin", item.Name)

	_, err = repo.GetByID(context.Background(), 999)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestRepositoryRoundTripsMoneyAndTags(t *testing.T) {
	db := openTestDB(t)
	seedTestMenu(t, db)
	repo := NewRepository(db)

	item, err := repo.GetByID(context.Background(), 13)
	require.NoError(t, err)
	assert.Equal(t, "11", item.Price.String())
	assert.Len(t, item.Tags, 2)
}
