package socket_io

import (
	"VoxRace/services/broadcast"
	"VoxRace/services/game"
	"VoxRace/services/socket_io/handlers"
	socketio_types "VoxRace/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	eio_log "github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start registers the event handlers of every new socket and mounts the
// socket.io endpoints on the router
func (sio *MySocketServer) Start(router *gin.Engine, engine *game.Engine, debug bool, allowedOrigins []string) {
	eio_log.DEBUG = debug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      corsOrigin(allowedOrigins),
		Credentials: true,
	})

	server := (*socketio_types.SocketServer)(sio)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		connID := engine.Connect(string(client.Id()))
		server.AddConnection(connID, client)
		log.Printf("[CONNECT] Socket %s connected. Connections: %d", connID, engine.ConnectionCount())

		// Create a room and join it as host
		client.On(broadcast.EventCreateRoom, handlers.HandleCreateRoom(engine, server, connID))

		// Join an existing room
		client.On(broadcast.EventJoinRoom, handlers.HandleJoinRoom(engine, server, connID))

		// Leave the current room voluntarily
		client.On(broadcast.EventLeaveRoom, handlers.HandleLeaveRoom(engine, connID))

		// Snapshot of a room (players, leaderboard, round info)
		client.On(broadcast.EventGetRoom, handlers.HandleGetRoom(engine, server, connID))

		// Start the game (host only)
		client.On(broadcast.EventStartGame, handlers.HandleStartGame(engine, connID))

		// Guess the current song
		client.On(broadcast.EventSubmitAnswer, handlers.HandleSubmitAnswer(engine, connID))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(engine, connID, server))
	})

	handler := gin.WrapH(sio.Sio_server.ServeHandler(c))
	router.POST("/socket.io/*f", handler)
	router.GET("/socket.io/*f", handler)

	log.Println("Socket server started")
}

// Close disconnects every socket
func (sio *MySocketServer) Close() {
	sio.Sio_server.Close(nil)
}

func corsOrigin(allowed []string) any {
	switch len(allowed) {
	case 0:
		return "*"
	case 1:
		return allowed[0]
	default:
		origins := make([]any, 0, len(allowed))
		for _, o := range allowed {
			origins = append(origins, o)
		}
		return origins
	}
}
