package store

import (
	"sync"

	"character-auction/internal/room"
)

// MemoryStore is the process-wide room registry. State is ephemeral: it lives
// from process start to shutdown and is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*room.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// PutIfAbsent inserts the room and reports whether the code was free. Callers
// regenerate the code and retry on collision.
func (m *MemoryStore) PutIfAbsent(r *room.Room) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.rooms[r.Code]; exists {
		return false
	}
	m.rooms[r.Code] = r
	return true
}

// All returns a snapshot of every room, order undefined.
func (m *MemoryStore) All() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}
