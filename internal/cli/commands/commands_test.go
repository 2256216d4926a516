package commands

import (
	"Catalogue/internal/cli/api"
	"Catalogue/internal/cli/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_FiltersPersist(t *testing.T) {
	cfg := withTempConfig(t, newCatalogueServer(t))

	out, err := run(t, cfg, itemsCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, `Filters: search="" category=All favorites=off sort=NAME_ASC`)
	assert.Contains(t, out, "> ☆ Chair")
	assert.Contains(t, out, "Total: 5")

	out, err = run(t, cfg, itemsCmd{}, "--category", "Electronics", "--sort", "PRICE_DESC")
	require.NoError(t, err)
	assert.Contains(t, out, "> ☆ Laptop")
	assert.Contains(t, out, "Headphones")
	assert.NotContains(t, out, "Chair")
	assert.Contains(t, out, "$1200.00")

	// без флагов используются сохранённые фильтры
	out, err = run(t, cfg, itemsCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, "category=Electronics")
	assert.Contains(t, out, "sort=PRICE_DESC")
	assert.Contains(t, out, "Total: 2")

	out, err = run(t, cfg, itemsCmd{}, "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No items match the current filters.")

	out, err = run(t, cfg, itemsCmd{}, "--search", "", "--category", "All")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 5")

	_, err = run(t, cfg, itemsCmd{}, "--sort", "RANDOM")
	assert.Error(t, err)
	_, err = run(t, cfg, itemsCmd{}, "extra")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCategories_Run(t *testing.T) {
	cfg := withTempConfig(t, newCatalogueServer(t))

	out, err := run(t, cfg, categoriesCmd{})
	require.NoError(t, err)
	assert.Equal(t, "- All\n- Electronics\n- Furniture\n- Stationery\n", out)

	_, err = run(t, cfg, categoriesCmd{}, "x")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSelectItemFav(t *testing.T) {
	url := newCatalogueServer(t)
	cfg := withTempConfig(t, url)
	penID := itemID(t, url, "Pen")

	_, err := run(t, cfg, itemCmd{})
	assert.ErrorIs(t, err, service.ErrNoSelection)

	out, err := run(t, cfg, selectCmd{}, penID)
	require.NoError(t, err)
	assert.Contains(t, out, "name:      Pen")

	out, err = run(t, cfg, itemCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, "price:     $3.00")

	out, err = run(t, cfg, favCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, "★ Added to favorites")
	assert.Contains(t, out, "> ★ Pen")

	out, err = run(t, cfg, itemsCmd{}, "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1")

	out, err = run(t, cfg, favCmd{}, penID)
	require.NoError(t, err)
	assert.Contains(t, out, "☆ Removed from favorites")
	assert.Contains(t, out, "No items match the current filters.")

	_, err = run(t, cfg, selectCmd{}, "no-such-id")
	assert.ErrorIs(t, err, service.ErrItemNotFound)
	_, err = run(t, cfg, selectCmd{})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestFav_LocalFavorites(t *testing.T) {
	url := newCatalogueServer(t)
	cfg := withTempConfig(t, url)
	cfg.LocalFavorites = true
	chairID := itemID(t, url, "Chair")

	out, err := run(t, cfg, favCmd{}, chairID)
	require.NoError(t, err)
	assert.Contains(t, out, "★ Added to favorites")

	// на сервере отметка не изменилась
	it, err := api.NewClient(url).Item(context.Background(), chairID)
	require.NoError(t, err)
	assert.False(t, it.Favorite)

	out, err = run(t, cfg, itemsCmd{}, "--favorites=true")
	require.NoError(t, err)
	assert.Contains(t, out, "★ Chair")
	assert.Contains(t, out, "Total: 1")
}

func TestAdd_Run(t *testing.T) {
	url := newCatalogueServer(t)
	cfg := withTempConfig(t, url)

	out, err := run(t, cfg, addCmd{}, "--favorite", "Lamp", "Lighting", "19.9")
	require.NoError(t, err)
	assert.Contains(t, out, "Created:")
	assert.Contains(t, out, "name:      Lamp")
	assert.Contains(t, out, "favorite:  true")
	// список перечитан сразу после создания, новая запись выбрана
	assert.Contains(t, out, "> ★ Lamp")
	assert.Contains(t, out, "Total: 6")

	out, err = run(t, cfg, itemsCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, "> ★ Lamp")
	assert.Contains(t, out, "Total: 6")

	_, err = run(t, cfg, addCmd{}, "Lamp", "Lighting", "-1")
	assert.EqualError(t, err, "Price cannot be negative.")
	_, err = run(t, cfg, addCmd{}, " ", "Lighting", "1")
	assert.EqualError(t, err, "Name and category are required.")
	_, err = run(t, cfg, addCmd{}, "Lamp", "Lighting", "cheap")
	assert.EqualError(t, err, "Price must be a valid number.")
	_, err = run(t, cfg, addCmd{}, "Lamp", "Lighting")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestReset_Run(t *testing.T) {
	cfg := withTempConfig(t, newCatalogueServer(t))

	_, err := run(t, cfg, itemsCmd{}, "--search", "pen", "--sort", "PRICE_ASC")
	require.NoError(t, err)

	out, err := run(t, cfg, resetCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, "Filters reset")

	out, err = run(t, cfg, itemsCmd{})
	require.NoError(t, err)
	assert.Contains(t, out, `search="" category=All favorites=off sort=NAME_ASC`)
	assert.Contains(t, out, "Total: 5")
}

func TestAdd_EmptyServerReply(t *testing.T) {
	// сервер ответил без item и без errors
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"createItem":{"item":null,"errors":[]}}}`))
	}))
	defer ts.Close()
	cfg := withTempConfig(t, ts.URL)

	_, err := run(t, cfg, addCmd{}, "Lamp", "Lighting", "1")
	assert.ErrorIs(t, err, service.ErrCreateFailed)
	assert.EqualError(t, err, "Failed to create item. Please try again.")
}
