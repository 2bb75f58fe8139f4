package repositories

import (
	"encoding/json"

	"shoptrack/internal/models"
	"shoptrack/internal/storage"
)

// PurchaseRepository owns the append-only purchase ledger.
type PurchaseRepository struct {
	store     storage.KV
	purchases []models.Purchase
	loaded    bool
}

func NewPurchaseRepository(store storage.KV) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

func (r *PurchaseRepository) load() error {
	if r.loaded {
		return nil
	}
	data, ok, err := r.store.Read(storage.KeyPurchases)
	if err != nil {
		return err
	}
	if ok {
		var purchases []models.Purchase
		if err := json.Unmarshal(data, &purchases); err != nil {
			return &storage.PersistenceError{Op: "decode", Key: storage.KeyPurchases, Err: err}
		}
		r.purchases = purchases
	}
	r.loaded = true
	return nil
}

// List returns all purchases in insertion order.
func (r *PurchaseRepository) List() ([]models.Purchase, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]models.Purchase, len(r.purchases))
	copy(out, r.purchases)
	return out, nil
}

// Add appends the purchase and persists the ledger.
func (r *PurchaseRepository) Add(p models.Purchase) error {
	if err := r.load(); err != nil {
		return err
	}
	next := make([]models.Purchase, len(r.purchases), len(r.purchases)+1)
	copy(next, r.purchases)
	next = append(next, p)
	data, err := json.Marshal(next)
	if err != nil {
		return &storage.PersistenceError{Op: "encode", Key: storage.KeyPurchases, Err: err}
	}
	if err := r.store.Write(storage.KeyPurchases, data); err != nil {
		return err
	}
	r.purchases = next
	return nil
}
