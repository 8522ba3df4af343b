package handlers

import (
	"VoxRace/services/game"
	socketio_types "VoxRace/services/socket_io/types"
	"log"
)

// Function to handle socket.io client disconnections. The player is removed from its room
// (handing over the host or deleting the room when needed) before the socket is forgotten.
func HandleDisconnecting(engine *game.Engine, connID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] HandleDisconnecting iniciado - Socket: %s, Reason: %v", connID, args)

		engine.Disconnect(connID)

		// Finally remove connection from map
		sio.RemoveConnection(connID)
		log.Printf("[DISCONNECT-DONE] Socket desconectado: %s. Sockets: %d, players connected: %d", connID, sio.ConnectionCount(), engine.ConnectionCount())
	}
}
