package game

import (
	"sync"
)

// MemoryHandStateTracker keeps serialized hand state in process memory.
// Used by tests and single-process deployments.
type MemoryHandStateTracker struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryHandStateTracker() *MemoryHandStateTracker {
	return &MemoryHandStateTracker{states: make(map[string][]byte)}
}

func (m *MemoryHandStateTracker) Load(gameCode string) (*HandStateRecord, error) {
	m.mu.Lock()
	data, ok := m.states[gameCode]
	m.mu.Unlock()
	if !ok {
		return nil, HandStateNotFoundError{GameCode: gameCode}
	}
	var rec HandStateRecord
	if err := persistJSON.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *MemoryHandStateTracker) Save(gameCode string, record *HandStateRecord) error {
	data, err := persistJSON.Marshal(record)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.states[gameCode] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryHandStateTracker) Remove(gameCode string) error {
	m.mu.Lock()
	delete(m.states, gameCode)
	m.mu.Unlock()
	return nil
}
