package handlers

import (
	"VoxRace/services/game"
	socketio_utils "VoxRace/services/socket_io/utils"
	"log"
)

// Function to handle `start-game(code)`. Only the host's request has an effect; anything
// else is dropped by the engine without telling the client.
func HandleStartGame(engine *game.Engine, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, _ = socketio_utils.SplitAck(args)
		code := socketio_utils.RoomCodeArg(args)
		log.Printf("[START] HandleStartGame - Socket: %s, Room: %s", connID, code)
		engine.StartGame(code, connID)
	}
}

// Function to handle `submit-answer({roomCode, answer})`
func HandleSubmitAnswer(engine *game.Engine, connID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		args, _ = socketio_utils.SplitAck(args)
		code, answer := socketio_utils.AnswerArgs(args)
		engine.SubmitAnswer(code, connID, answer)
	}
}
