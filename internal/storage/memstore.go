package storage

import "errors"

// MemStore is an in-memory substrate for tests. FailWrites, when set, makes
// every Write fail without touching state, which is how the no-partial-write
// and rollback paths are exercised.
type MemStore struct {
	data       map[string][]byte
	FailWrites bool
	// FailKey, when non-empty, fails writes for that key only.
	FailKey string
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Read(key string) ([]byte, bool, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (s *MemStore) Write(key string, data []byte) error {
	if s.FailWrites || (s.FailKey != "" && s.FailKey == key) {
		return &PersistenceError{Op: "write", Key: key, Err: errors.New("write disabled")}
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[key] = cp
	return nil
}
