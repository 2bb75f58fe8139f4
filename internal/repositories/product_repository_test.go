package repositories

import (
	"errors"
	"testing"
	"time"

	"shoptrack/internal/models"
	"shoptrack/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProduct() models.Product {
	return models.Product{
		ID:            "p1",
		Name:          "Galaxy A14",
		Brand:         "Samsung",
		Category:      models.CategoryMobile,
		IMEI:          "356938035643809",
		Color:         "Black",
		Storage:       "128GB",
		MfgDate:       "2023-11-01",
		PurchasePrice: 30000,
		SalePrice:     35000,
		Quantity:      2,
		Supplier:      "Hall Road Traders",
		DateAdded:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Status:        models.StatusInStock,
	}
}

func bareProduct() models.Product {
	// Only required fields; every optional field left absent
	return models.Product{
		ID:            "p2",
		Name:          "Charging Cable",
		Brand:         "Generic",
		Category:      models.CategoryAccessory,
		PurchasePrice: 150,
		SalePrice:     300,
		Quantity:      20,
		DateAdded:     time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		Status:        models.StatusInStock,
	}
}

func TestProductRoundTripAcrossSessions(t *testing.T) {
	store := storage.NewMemStore()
	repo := NewProductRepository(store)
	require.NoError(t, repo.Add(fullProduct()))
	require.NoError(t, repo.Add(bareProduct()))

	// A fresh repository over the same substrate sees identical records
	reloaded := NewProductRepository(store)
	products, err := reloaded.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, fullProduct(), products[0])
	assert.Equal(t, bareProduct(), products[1])
}

func TestProductListEmptyStore(t *testing.T) {
	repo := NewProductRepository(storage.NewMemStore())
	products, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductUpdateMergesPatch(t *testing.T) {
	repo := NewProductRepository(storage.NewMemStore())
	require.NoError(t, repo.Add(fullProduct()))

	qty := 1
	require.NoError(t, repo.Update("p1", models.ProductPatch{Quantity: &qty}))

	got, err := repo.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	// Untouched fields survive the merge
	assert.Equal(t, models.StatusInStock, got.Status)
	assert.Equal(t, "Galaxy A14", got.Name)
}

func TestProductUpdateUnknownIDDoesNotCreate(t *testing.T) {
	repo := NewProductRepository(storage.NewMemStore())
	require.NoError(t, repo.Add(fullProduct()))

	qty := 5
	err := repo.Update("missing", models.ProductPatch{Quantity: &qty})
	assert.ErrorIs(t, err, ErrNotFound)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductAddFailedPersistLeavesMemoryUnchanged(t *testing.T) {
	store := storage.NewMemStore()
	repo := NewProductRepository(store)
	require.NoError(t, repo.Add(fullProduct()))

	store.FailWrites = true
	err := repo.Add(bareProduct())
	require.Error(t, err)

	var perr *storage.PersistenceError
	assert.True(t, errors.As(err, &perr))

	store.FailWrites = false
	products, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductUpdateFailedPersistLeavesMemoryUnchanged(t *testing.T) {
	store := storage.NewMemStore()
	repo := NewProductRepository(store)
	require.NoError(t, repo.Add(fullProduct()))

	store.FailWrites = true
	qty := 0
	err := repo.Update("p1", models.ProductPatch{Quantity: &qty})
	require.Error(t, err)

	got, getErr := repo.Get("p1")
	require.NoError(t, getErr)
	assert.Equal(t, 2, got.Quantity)
}
