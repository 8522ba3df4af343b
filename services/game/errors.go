package game

import (
	"VoxRace/services/rooms"
	"errors"
)

// Validation
var (
	ErrInvalidRoomCode = errors.New("invalid room code")
	ErrEmptyNickname   = errors.New("nickname is required")
	ErrNicknameTooLong = errors.New("nickname is too long")
	ErrInvalidSettings = errors.New("invalid room options")
)

// Not found
var ErrRoomNotFound = errors.New("room not found")

// Conflict
var (
	ErrDuplicateRoom = rooms.ErrDuplicateRoom
	ErrNameTaken     = errors.New("nickname already taken in this room")
)

// ErrorKind groups errors the way acknowledgements report them
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidRoomCode),
		errors.Is(err, ErrEmptyNickname),
		errors.Is(err, ErrNicknameTooLong),
		errors.Is(err, ErrInvalidSettings):
		return KindValidation
	case errors.Is(err, ErrRoomNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateRoom), errors.Is(err, ErrNameTaken):
		return KindConflict
	default:
		return KindInternal
	}
}
