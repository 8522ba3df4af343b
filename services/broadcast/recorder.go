package broadcast

import "sync"

// Sent is one event captured by a Recorder
type Sent struct {
	Target  string // room code or connection id
	ToRoom  bool
	Event   string
	Payload any
}

// Recorder is an in-memory Gateway for tests. It also tracks membership.
type Recorder struct {
	mu      sync.Mutex
	sent    []Sent
	members map[string]map[string]bool // room -> conn
}

func NewRecorder() *Recorder {
	return &Recorder{members: make(map[string]map[string]bool)}
}

func (r *Recorder) ToRoom(roomCode, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Target: roomCode, ToRoom: true, Event: event, Payload: payload})
}

func (r *Recorder) ToConnection(connID, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Target: connID, Event: event, Payload: payload})
}

func (r *Recorder) JoinRoom(connID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.members[roomCode] == nil {
		r.members[roomCode] = make(map[string]bool)
	}
	r.members[roomCode][connID] = true
}

func (r *Recorder) LeaveRoom(connID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members[roomCode], connID)
}

// Sent returns a copy of everything emitted so far
func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sent, len(r.sent))
	copy(out, r.sent)
	return out
}

// Events returns the names of the events broadcast to roomCode, in order
func (r *Recorder) Events(roomCode string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, s := range r.sent {
		if s.ToRoom && s.Target == roomCode {
			names = append(names, s.Event)
		}
	}
	return names
}

// Last returns the payload of the last room broadcast of event, or nil
func (r *Recorder) Last(roomCode, event string) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		s := r.sent[i]
		if s.ToRoom && s.Target == roomCode && s.Event == event {
			return s.Payload
		}
	}
	return nil
}

// Count returns how many times event was broadcast to roomCode
func (r *Recorder) Count(roomCode, event string) int {
	n := 0
	for _, e := range r.Events(roomCode) {
		if e == event {
			n++
		}
	}
	return n
}

func (r *Recorder) IsMember(connID, roomCode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[roomCode][connID]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
