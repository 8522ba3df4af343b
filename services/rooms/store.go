package rooms

import (
	"VoxRace/models"
	"errors"
	"log"
	"sort"
	"sync"
)

// ErrDuplicateRoom is returned when creating a code that is already taken
var ErrDuplicateRoom = errors.New("room already exists")

// Store maps room codes to the actor owning each room. It is the only
// structure shared by every connection; rooms themselves are never touched here.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Actor
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*Actor),
	}
}

// Create registers room under its code and starts its actor.
// The code must already be normalized.
func (s *Store) Create(room *models.Room) (*Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[room.Code]; exists {
		return nil, ErrDuplicateRoom
	}
	actor := StartActor(room)
	s.rooms[room.Code] = actor
	log.Printf("[STORE] Room %s stored. Total rooms: %d", room.Code, len(s.rooms))
	return actor, nil
}

// UnusedCode generates codes until one is not taken right now. Nothing is
// reserved, a concurrent create may still claim it.
func (s *Store) UnusedCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for {
		code := GenerateCode()
		if _, taken := s.rooms[code]; !taken {
			return code
		}
	}
}

func (s *Store) Get(code string) (*Actor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	actor, ok := s.rooms[code]
	return actor, ok
}

// Delete removes the code only if it still points at actor, so a late delete
// never drops a room re-created under the same code.
func (s *Store) Delete(code string, actor *Actor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rooms[code]
	if !ok || current != actor {
		return false
	}
	delete(s.rooms, code)
	log.Printf("[STORE] Room %s deleted. Total rooms: %d", code, len(s.rooms))
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Codes returns every live code, sorted
func (s *Store) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.rooms))
	for code := range s.rooms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
