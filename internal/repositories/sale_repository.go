package repositories

import (
	"encoding/json"

	"shoptrack/internal/models"
	"shoptrack/internal/storage"
)

// SaleRepository owns the append-only sale ledger. Sales are never updated
// or removed once written.
type SaleRepository struct {
	store  storage.KV
	sales  []models.Sale
	loaded bool
}

func NewSaleRepository(store storage.KV) *SaleRepository {
	return &SaleRepository{store: store}
}

func (r *SaleRepository) load() error {
	if r.loaded {
		return nil
	}
	data, ok, err := r.store.Read(storage.KeySales)
	if err != nil {
		return err
	}
	if ok {
		var sales []models.Sale
		if err := json.Unmarshal(data, &sales); err != nil {
			return &storage.PersistenceError{Op: "decode", Key: storage.KeySales, Err: err}
		}
		r.sales = sales
	}
	r.loaded = true
	return nil
}

// List returns all sales in insertion order.
func (r *SaleRepository) List() ([]models.Sale, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// Add appends the sale and persists the ledger.
func (r *SaleRepository) Add(s models.Sale) error {
	if err := r.load(); err != nil {
		return err
	}
	next := make([]models.Sale, len(r.sales), len(r.sales)+1)
	copy(next, r.sales)
	next = append(next, s)
	data, err := json.Marshal(next)
	if err != nil {
		return &storage.PersistenceError{Op: "encode", Key: storage.KeySales, Err: err}
	}
	if err := r.store.Write(storage.KeySales, data); err != nil {
		return err
	}
	r.sales = next
	return nil
}
