package broadcast

// Gateway is the only way the game pushes events to clients. Implementations
// must deliver events for one room in the order they were emitted.
type Gateway interface {
	// ToRoom sends to every connection joined to roomCode
	ToRoom(roomCode, event string, payload any)
	// ToConnection sends to a single connection
	ToConnection(connID, event string, payload any)
	// JoinRoom subscribes a connection to a room's broadcasts
	JoinRoom(connID, roomCode string)
	// LeaveRoom unsubscribes a connection from a room's broadcasts
	LeaveRoom(connID, roomCode string)
}
