package game

import (
	"VoxRace/models"
	"VoxRace/services/broadcast"
	"VoxRace/services/leaderboard"
	"VoxRace/services/rooms"
	"log"
	"slices"

	"github.com/samber/lo"
)

// bind links connID to the room it was just added to. A connection that
// dropped in the meantime is taken out again and false is returned.
func (e *Engine) bind(actor *rooms.Actor, r *models.Room, connID string) bool {
	if e.registry.Associate(connID, r.Code, connID) {
		e.gateway.JoinRoom(connID, r.Code)
		return true
	}
	log.Printf("[ROOM-JOIN] %s disconnected before joining room %s", connID, r.Code)
	e.detach(actor, r, connID)
	return false
}

// depart removes the player behind a binding from its room
func (e *Engine) depart(connID string, b rooms.Binding) {
	e.gateway.LeaveRoom(connID, b.RoomCode)
	actor, ok := e.store.Get(b.RoomCode)
	if !ok {
		return
	}
	_ = actor.Do(func(r *models.Room) {
		e.removePlayer(actor, r, b.PlayerID)
	})
}

func (e *Engine) removePlayer(actor *rooms.Actor, r *models.Room, playerID string) {
	p, newHostID, remaining := e.detach(actor, r, playerID)
	if p == nil || !remaining {
		return
	}
	if newHostID != "" {
		log.Printf("[HOST-CHANGED] Room %s: host is now %s", r.Code, newHostID)
		e.gateway.ToRoom(r.Code, broadcast.EventHostChanged, broadcast.HostChanged{HostID: newHostID})
	}
	e.gateway.ToRoom(r.Code, broadcast.EventPlayerLeft, broadcast.PlayerLeft{
		ID:        p.ID,
		Name:      p.Name,
		NewHostID: newHostID,
	})
	e.broadcastMembership(r)
	e.broadcastLeaderboard(r)
}

// detach takes a player out of the room. An empty room is deleted unless the
// game is over, in which case the reap timer deletes it later. When host
// privilege moved, newHostID names the new host.
func (e *Engine) detach(actor *rooms.Actor, r *models.Room, playerID string) (p *models.Player, newHostID string, remaining bool) {
	p, idx := r.FindPlayer(playerID)
	if p == nil {
		return nil, "", !r.IsEmpty()
	}
	r.Players = slices.Delete(r.Players, idx, idx+1)
	delete(r.Scores, playerID)
	delete(r.AnsweredThisSong, playerID)
	log.Printf("[ROOM-LEAVE] %s (%s) left room %s. Players: %d", p.Name, p.ID, r.Code, len(r.Players))

	if r.IsEmpty() {
		r.HostID = ""
		if r.State == models.StateFinished {
			log.Printf("[ROOM-LEAVE] Room %s is empty, kept until its results expire", r.Code)
		} else {
			e.deleteRoom(actor, r, "empty")
		}
		return p, "", false
	}

	if r.HostID == playerID {
		next := r.Players[0]
		next.IsHost = true
		r.HostID = next.ID
		newHostID = next.ID
	}
	return p, newHostID, true
}

// deleteRoom cancels every timer, drops the room from the store and stops
// its actor. It must run on the room's actor.
func (e *Engine) deleteRoom(actor *rooms.Actor, r *models.Room, reason string) {
	e.cancelTimers(r)
	r.IsSongActive = false
	for _, p := range r.Players {
		e.registry.Dissociate(p.ID, r.Code)
		e.gateway.LeaveRoom(p.ID, r.Code)
	}
	e.store.Delete(r.Code, actor)
	actor.Close()
	log.Printf("[ROOM-DELETE] Room %s deleted (%s)", r.Code, reason)
}

func (e *Engine) broadcastMembership(r *models.Room) {
	e.gateway.ToRoom(r.Code, broadcast.EventRoomUpdated, broadcast.RoomUpdated{
		RoomCode: r.Code,
		Players: lo.Map(r.Players, func(p *models.Player, _ int) models.Player {
			return *p
		}),
	})
}

func (e *Engine) broadcastLeaderboard(r *models.Room) {
	e.gateway.ToRoom(r.Code, broadcast.EventLeaderboardUpdate, leaderboard.Project(r))
}
