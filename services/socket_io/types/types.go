package socketio_types

import (
	"log"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It is the socket.io implementation of the broadcast gateway used by the game.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track connection id -> socket
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Sio_server:  socket.NewServer(nil, nil),
		Connections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(connID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[connID] = client
}

func (s *SocketServer) RemoveConnection(connID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, connID)
}

func (s *SocketServer) GetConnection(connID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[connID]
	return client, exists
}

func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Connections)
}

// ToRoom emits to every socket joined to the room
func (s *SocketServer) ToRoom(roomCode, event string, payload any) {
	s.Sio_server.To(socket.Room(roomCode)).Emit(event, payload)
}

func (s *SocketServer) ToConnection(connID, event string, payload any) {
	client, exists := s.GetConnection(connID)
	if !exists {
		log.Printf("[EMIT] Connection %s is gone, %s dropped", connID, event)
		return
	}
	client.Emit(event, payload)
}

func (s *SocketServer) JoinRoom(connID, roomCode string) {
	if client, exists := s.GetConnection(connID); exists {
		client.Join(socket.Room(roomCode))
	}
}

func (s *SocketServer) LeaveRoom(connID, roomCode string) {
	if client, exists := s.GetConnection(connID); exists {
		client.Leave(socket.Room(roomCode))
	}
}
