package catalogfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/pkg/apperror"
)

func TestProductStore_EmptyDir(t *testing.T) {
	store, err := NewProductStore(t.TempDir())
	require.NoError(t, err)

	products, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)

	product, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductStore_SaveAndGet(t *testing.T) {
	dir := t.TempDir()
	store, err := NewProductStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	product := &entity.Product{
		ID:       "kaju-katli",
		Name:     "Kaju Katli",
		Price:    850,
		Category: "dry-fruit",
		Unit:     "kg",
	}
	require.NoError(t, store.Save(ctx, product))
	assert.False(t, product.CreatedAt.IsZero())

	got, err := store.Get(ctx, "kaju-katli")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kaju Katli", got.Name)
	assert.Equal(t, 850.0, got.Price)

	// Updates replace the record but keep the original creation time.
	created := got.CreatedAt
	product.Price = 900
	require.NoError(t, store.Save(ctx, product))

	got, err = store.Get(ctx, "kaju-katli")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 900.0, got.Price)
	assert.Equal(t, created, got.CreatedAt)

	// The snapshot on disk is a plain JSON array.
	data, err := os.ReadFile(filepath.Join(dir, productsFile))
	require.NoError(t, err)
	var records []entity.Product
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 1)
}

func TestProductStore_Delete(t *testing.T) {
	store, err := NewProductStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Product{ID: "rasgulla", Name: "Rasgulla", Price: 300}))
	require.NoError(t, store.Delete(ctx, "rasgulla"))

	got, err := store.Get(ctx, "rasgulla")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.Delete(ctx, "rasgulla")
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))
}

func TestProductStore_ReloadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewProductStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, &entity.Product{ID: "laddu", Name: "Laddu", Price: 400}))

	// A fresh store over the same directory sees the persisted snapshot.
	second, err := NewProductStore(dir)
	require.NoError(t, err)
	products, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Laddu", products[0].Name)
}

func TestStockStore_SaveGetDelete(t *testing.T) {
	store, err := NewStockStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	item := &entity.StockItem{ID: "besan", Name: "Besan", Quantity: 25, Unit: "kg"}
	require.NoError(t, store.Save(ctx, item))

	got, err := store.Get(ctx, "besan")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25.0, got.Quantity)

	item.Quantity = 18.5
	require.NoError(t, store.Save(ctx, item))
	got, err = store.Get(ctx, "besan")
	require.NoError(t, err)
	assert.Equal(t, 18.5, got.Quantity)

	require.NoError(t, store.Delete(ctx, "besan"))
	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
