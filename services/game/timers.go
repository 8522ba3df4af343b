package game

import (
	"VoxRace/models"
	"VoxRace/services/rooms"
	"log"
	"time"
)

// Timer slots of a room
func songTimer(r *models.Room) *models.Timer { return &r.SongTimer }
func countdownTimer(r *models.Room) *models.Timer { return &r.CountdownTimer }
func reapTimer(r *models.Room) *models.Timer { return &r.ReapTimer }

// after arms a timer whose callback runs fn on the room's actor. The callback
// is dropped when the slot no longer holds this timer, which happens once it
// was stopped or replaced. Callers store the result in the slot.
func (e *Engine) after(actor *rooms.Actor, d time.Duration, slot func(*models.Room) *models.Timer, fn func(*models.Room)) models.Timer {
	var handle models.Timer
	handle = e.clock.AfterFunc(d, func() {
		actor.Post(func(r *models.Room) {
			current := slot(r)
			if *current != handle {
				log.Printf("[TIMER] Room %s: stale timer fired, ignored", r.Code)
				return
			}
			*current = nil
			fn(r)
		})
	})
	return handle
}

// stopTimer cancels the timer in a slot and clears it
func stopTimer(slot *models.Timer) {
	if *slot != nil {
		(*slot).Stop()
		*slot = nil
	}
}

func (e *Engine) cancelTimers(r *models.Room) {
	stopTimer(&r.SongTimer)
	stopTimer(&r.CountdownTimer)
	stopTimer(&r.ReapTimer)
}
