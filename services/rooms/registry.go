package rooms

import (
	"sync"

	"github.com/google/uuid"
)

// Binding is where a connection currently plays
type Binding struct {
	RoomCode string
	PlayerID string
}

// Registry tracks live connections and the room each one belongs to
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Binding // nil binding: connected, not in a room
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Binding),
	}
}

// Connect records a new connection. The transport's id is used when it has
// one, otherwise a fresh id is minted.
func (r *Registry) Connect(id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[id]; !ok {
		r.conns[id] = nil
	}
	return id
}

// Associate binds a connection to a room and player. It returns false when
// the connection already went away, in which case nothing is recorded.
func (r *Registry) Associate(connID, roomCode, playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[connID]; !ok {
		return false
	}
	r.conns[connID] = &Binding{RoomCode: roomCode, PlayerID: playerID}
	return true
}

// Dissociate clears the room binding but keeps the connection, only when it
// still points at roomCode.
func (r *Registry) Dissociate(connID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.conns[connID]; ok && b != nil && b.RoomCode == roomCode {
		r.conns[connID] = nil
	}
}

// Lookup returns the current binding of a connection
func (r *Registry) Lookup(connID string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.conns[connID]
	if !ok || b == nil {
		return Binding{}, false
	}
	return *b, true
}

// Disconnect forgets the connection and returns the room it was in, if any.
// Unknown or unbound connections are a no-op.
func (r *Registry) Disconnect(connID string) (Binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.conns[connID]
	delete(r.conns, connID)
	if !ok || b == nil {
		return Binding{}, false
	}
	return *b, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
