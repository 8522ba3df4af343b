package game

import (
	"VoxRace/models"
	"time"
)

// Clock schedules every timer of the game. Tests swap in a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) models.Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) models.Timer {
	return time.AfterFunc(d, f)
}
