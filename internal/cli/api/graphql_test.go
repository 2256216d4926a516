package api_test

import (
	"Catalogue/internal/cli/api"
	"Catalogue/internal/config"
	"Catalogue/internal/handlers"
	"Catalogue/internal/repo"
	"Catalogue/internal/service"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newCatalogueServer поднимает настоящий сервер каталога поверх хранилища в памяти
func newCatalogueServer(t *testing.T) *api.Client {
	t.Helper()
	logger := zap.NewNop().Sugar()
	svc := service.NewItemService(repo.NewMemoryItemRepository(), logger)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	h, err := handlers.NewHandler(svc, logger, &config.Config{})
	require.NoError(t, err)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL)
}

func TestClient_QueriesAgainstServer(t *testing.T) {
	c := newCatalogueServer(t)
	ctx := context.Background()

	items, err := c.Items(ctx, api.ItemsQuery{})
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Chair", items[0].Name)
	assert.False(t, items[0].CreatedAt.IsZero())

	items, err = c.Items(ctx, api.ItemsQuery{Search: "note", Sort: "PRICE_DESC"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Notebook", items[0].Name)

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Furniture", "Stationery"}, cats)

	it, err := c.Item(ctx, items[0].ID)
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, 5.0, it.Price)

	it, err = c.Item(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestClient_MutationsAgainstServer(t *testing.T) {
	c := newCatalogueServer(t)
	ctx := context.Background()

	res, err := c.CreateItem(ctx, api.NewItem{Name: "Lamp", Category: "Lighting", Price: 25.5})
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	assert.Empty(t, res.Errors)
	lamp := *res.Item
	assert.Equal(t, "Lamp", lamp.Name)
	assert.False(t, lamp.Favorite)

	res, err = c.CreateItem(ctx, api.NewItem{Name: "", Category: "A", Price: -1})
	require.NoError(t, err)
	assert.Nil(t, res.Item)
	assert.Equal(t, []string{"Name can't be blank", "Price must be greater than or equal to 0"}, res.Errors)

	time.Sleep(2 * time.Millisecond)
	fav := true
	res, err = c.UpdateItem(ctx, lamp.ID, api.ItemPatch{Favorite: &fav})
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	assert.True(t, res.Item.Favorite)
	assert.Equal(t, 25.5, res.Item.Price)
	assert.True(t, res.Item.UpdatedAt.After(lamp.UpdatedAt))

	name := " "
	res, err = c.UpdateItem(ctx, lamp.ID, api.ItemPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, res.Item)
	assert.Equal(t, []string{"Name can't be blank"}, res.Errors)

	res, err = c.UpdateItem(ctx, "nope", api.ItemPatch{Favorite: &fav})
	require.NoError(t, err)
	assert.Nil(t, res.Item)
	assert.Equal(t, []string{"Item not found"}, res.Errors)
}
