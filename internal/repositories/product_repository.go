package repositories

import (
	"encoding/json"
	"errors"

	"shoptrack/internal/models"
	"shoptrack/internal/storage"
)

// ErrNotFound is returned when a record id does not exist. An update against
// an unknown id is a no-op, never an insert.
var ErrNotFound = errors.New("record not found")

// ProductRepository owns the product collection. The collection is loaded
// lazily from the substrate, cached in memory, and persisted write-through:
// a failed persist leaves the cached collection exactly as it was.
type ProductRepository struct {
	store    storage.KV
	products []models.Product
	loaded   bool
}

func NewProductRepository(store storage.KV) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) load() error {
	if r.loaded {
		return nil
	}
	data, ok, err := r.store.Read(storage.KeyProducts)
	if err != nil {
		return err
	}
	if ok {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return &storage.PersistenceError{Op: "decode", Key: storage.KeyProducts, Err: err}
		}
		r.products = products
	}
	r.loaded = true
	return nil
}

func (r *ProductRepository) persist(products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return &storage.PersistenceError{Op: "encode", Key: storage.KeyProducts, Err: err}
	}
	if err := r.store.Write(storage.KeyProducts, data); err != nil {
		return err
	}
	r.products = products
	return nil
}

// List returns the full collection in insertion order. An empty store yields
// an empty list, not an error.
func (r *ProductRepository) List() ([]models.Product, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Get returns the product with the given id.
func (r *ProductRepository) Get(id string) (*models.Product, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends the product and persists the collection. The caller supplies a
// unique id; the repository does not deduplicate.
func (r *ProductRepository) Add(p models.Product) error {
	if err := r.load(); err != nil {
		return err
	}
	next := make([]models.Product, len(r.products), len(r.products)+1)
	copy(next, r.products)
	next = append(next, p)
	return r.persist(next)
}

// Update merges the patch into the product with the given id and persists.
// Unknown ids return ErrNotFound without creating a record.
func (r *ProductRepository) Update(id string, patch models.ProductPatch) error {
	if err := r.load(); err != nil {
		return err
	}
	idx := -1
	for i := range r.products {
		if r.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	next := make([]models.Product, len(r.products))
	copy(next, r.products)
	p := &next[idx]
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	return r.persist(next)
}

// Remove exists only as the coordinator's compensation for a half-applied
// add-product; nothing on the public surface deletes products.
func (r *ProductRepository) Remove(id string) error {
	if err := r.load(); err != nil {
		return err
	}
	next := make([]models.Product, 0, len(r.products))
	found := false
	for _, p := range r.products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return ErrNotFound
	}
	return r.persist(next)
}
