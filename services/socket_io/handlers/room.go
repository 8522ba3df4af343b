package handlers

import (
	"VoxRace/services/broadcast"
	"VoxRace/services/game"
	socketio_utils "VoxRace/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// Function to handle `createRoom(code, nickname, options, ack)`. The socket becomes the host
// of a new lobby; the ack carries `{ok, roomCode}` or `{ok:false, message, code}`.
func HandleCreateRoom(engine *game.Engine, gw broadcast.Gateway, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, ack := socketio_utils.SplitAck(args)
		log.Printf("[CREATE] HandleCreateRoom iniciado - Socket: %s, Args: %v", connID, args)

		opts := game.RoomOptions{}
		if m := socketio_utils.MapArg(args, 2); m != nil {
			opts.Category = socketio_utils.StringField(m, "category")
			opts.Rounds = socketio_utils.IntField(m, "rounds")
			opts.TimePerSong = socketio_utils.IntField(m, "timePerSong")
		}

		roomCode, err := engine.CreateRoom(connID,
			socketio_utils.StringArg(args, 0), socketio_utils.StringArg(args, 1), opts)
		if err != nil {
			log.Printf("[CREATE-ERROR] Socket %s: %v", connID, err)
		}
		respond(gw, connID, ack, roomCode, err)
	}
}

// Function to handle `joinRoom(code, nickname, ack)`
func HandleJoinRoom(engine *game.Engine, gw broadcast.Gateway, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, ack := socketio_utils.SplitAck(args)
		log.Printf("[JOIN] HandleJoinRoom iniciado - Socket: %s, Args: %v", connID, args)

		roomCode, err := engine.JoinRoom(connID, socketio_utils.StringArg(args, 0), socketio_utils.StringArg(args, 1))
		if err != nil {
			log.Printf("[JOIN-ERROR] Socket %s: %v", connID, err)
		}
		respond(gw, connID, ack, roomCode, err)
	}
}

// Function to handle a voluntary `leaveRoom(code)`
func HandleLeaveRoom(engine *game.Engine, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, ack := socketio_utils.SplitAck(args)
		log.Printf("[LEAVE] HandleLeaveRoom - Socket: %s, Args: %v", connID, args)
		engine.LeaveRoom(connID, socketio_utils.RoomCodeArg(args))
		if ack != nil {
			ack([]any{broadcast.Ack{OK: true}}, nil)
		}
	}
}

// Function to handle `get-room(code, ack)`. Answers with the room snapshot, either through
// the ack or as a `get-room` event to the caller.
func HandleGetRoom(engine *game.Engine, gw broadcast.Gateway, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, ack := socketio_utils.SplitAck(args)
		snapshot, err := engine.Snapshot(socketio_utils.RoomCodeArg(args))
		if err != nil {
			log.Printf("[GET-ROOM-ERROR] Socket %s: %v", connID, err)
			respond(gw, connID, ack, "", err)
			return
		}
		if ack != nil {
			ack([]any{snapshot}, nil)
			return
		}
		gw.ToConnection(connID, broadcast.EventGetRoom, snapshot)
	}
}

// respond acknowledges a room request. Without an ack callback failures are
// reported to the caller through an `error` event instead.
func respond(gw broadcast.Gateway, connID string, ack socketio_utils.Ack, roomCode string, err error) {
	if err != nil {
		if ack == nil {
			gw.ToConnection(connID, broadcast.EventError, gin.H{"error": err.Error(), "code": game.Kind(err)})
			return
		}
		ack([]any{broadcast.Ack{OK: false, Message: err.Error(), Code: string(game.Kind(err))}}, nil)
		return
	}
	if ack != nil {
		ack([]any{broadcast.Ack{OK: true, RoomCode: roomCode}}, nil)
	}
}
