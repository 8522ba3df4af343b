package rooms

import (
	"VoxRace/models"
	"errors"
	"log"
)

// ErrRoomClosed is returned when a message reaches a room that was deleted
var ErrRoomClosed = errors.New("room closed")

const mailboxSize = 64

// Actor owns one room. Every read or write of the room runs on the actor's
// goroutine, one message at a time, in the order messages were queued.
type Actor struct {
	room    *models.Room
	inbox   chan func(*models.Room)
	done    chan struct{}
	stopped chan struct{}
}

// StartActor spawns the goroutine owning room
func StartActor(room *models.Room) *Actor {
	a := &Actor{
		room:    room,
		inbox:   make(chan func(*models.Room), mailboxSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Actor) run() {
	defer close(a.stopped)
	for {
		select {
		case <-a.done:
			return
		case fn := <-a.inbox:
			a.handle(fn)
		}
	}
}

// handle runs a single message; a panic only drops that message
func (a *Actor) handle(fn func(*models.Room)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ROOM-ACTOR-PANIC] Room %s: %v", a.room.Code, r)
		}
	}()
	select {
	case <-a.done:
		// closed by an earlier message, drop
		return
	default:
	}
	fn(a.room)
}

// Do runs fn on the room goroutine and waits for it
func (a *Actor) Do(fn func(*models.Room)) error {
	reply := make(chan struct{})
	msg := func(r *models.Room) {
		defer close(reply)
		fn(r)
	}
	if a.Closed() {
		return ErrRoomClosed
	}
	select {
	case a.inbox <- msg:
	case <-a.done:
		return ErrRoomClosed
	}
	select {
	case <-reply:
		return nil
	case <-a.stopped:
		// the message either ran before the actor stopped or was dropped
		select {
		case <-reply:
			return nil
		default:
			return ErrRoomClosed
		}
	}
}

// Post queues fn without waiting. Returns false when the room is gone.
func (a *Actor) Post(fn func(*models.Room)) bool {
	if a.Closed() {
		return false
	}
	select {
	case a.inbox <- fn:
		return true
	case <-a.done:
		return false
	}
}

// Close stops the actor. Only call it from a message running on the actor.
func (a *Actor) Close() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a *Actor) Closed() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}
