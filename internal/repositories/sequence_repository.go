package repositories

import (
	"encoding/json"
	"fmt"

	"shoptrack/internal/storage"
)

// SequenceRepository hands out the human-readable invoice and bill numbers.
// Counters are persisted alongside the ledgers, so numbers stay unique across
// sessions. A failed persist does not advance the counter.
type SequenceRepository struct {
	store    storage.KV
	counters map[string]int
	loaded   bool
}

func NewSequenceRepository(store storage.KV) *SequenceRepository {
	return &SequenceRepository{store: store}
}

func (r *SequenceRepository) load() error {
	if r.loaded {
		return nil
	}
	r.counters = make(map[string]int)
	data, ok, err := r.store.Read(storage.KeySequences)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(data, &r.counters); err != nil {
			return &storage.PersistenceError{Op: "decode", Key: storage.KeySequences, Err: err}
		}
	}
	r.loaded = true
	return nil
}

func (r *SequenceRepository) next(name string) (int, error) {
	if err := r.load(); err != nil {
		return 0, err
	}
	next := make(map[string]int, len(r.counters))
	for k, v := range r.counters {
		next[k] = v
	}
	next[name]++
	data, err := json.Marshal(next)
	if err != nil {
		return 0, &storage.PersistenceError{Op: "encode", Key: storage.KeySequences, Err: err}
	}
	if err := r.store.Write(storage.KeySequences, data); err != nil {
		return 0, err
	}
	r.counters = next
	return next[name], nil
}

// NextInvoiceNumber generates a unique sale invoice number
func (r *SequenceRepository) NextInvoiceNumber() (string, error) {
	n, err := r.next("invoice")
	if err != nil {
		return "", fmt.Errorf("failed to get next invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%06d", n), nil
}

// NextBillNumber generates a unique purchase bill number
func (r *SequenceRepository) NextBillNumber() (string, error) {
	n, err := r.next("bill")
	if err != nil {
		return "", fmt.Errorf("failed to get next bill number: %w", err)
	}
	return fmt.Sprintf("PUR-%06d", n), nil
}
