package storage

import "fmt"

// Fixed keys for the persisted collections. Each key maps to one serialized
// JSON document.
const (
	KeyProducts  = "products"
	KeySales     = "sales"
	KeyPurchases = "purchases"
	KeySequences = "sequences"
)

// KV is the persistence substrate: a small key-value store scoped to the
// local machine. Read reports absence separately from failure so an empty
// store is not an error. Write fully completes (or fails) before returning.
type KV interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// PersistenceError wraps a substrate read/write failure. Repositories
// propagate it unchanged and leave their in-memory state untouched.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
