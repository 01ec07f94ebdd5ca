package mocks

import "context"

// KeyValueStore is an in-memory mock implementation of ports.KeyValueStore.
type KeyValueStore struct {
	Values map[string][]byte

	// Per-operation errors for fine-grained control
	GetErr    error
	PutErr    error
	DeleteErr error

	// Call tracking
	PutCallCount    int
	DeleteCallCount int
}

// NewKeyValueStore creates an empty mock store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{Values: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or nil if absent.
func (m *KeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value.
func (m *KeyValueStore) Put(_ context.Context, key string, value []byte) error {
	m.PutCallCount++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (m *KeyValueStore) Delete(_ context.Context, key string) error {
	m.DeleteCallCount++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Values, key)
	return nil
}

// Close is a no-op.
func (m *KeyValueStore) Close() error {
	return nil
}
