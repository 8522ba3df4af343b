package socketio_types

import (
	"VoxRace/services/broadcast"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ broadcast.Gateway = (*SocketServer)(nil)

func TestConnections(t *testing.T) {
	s := NewSocketServer()

	s.AddConnection("c1", nil)
	s.AddConnection("c2", nil)
	assert.Equal(t, 2, s.ConnectionCount())

	_, ok := s.GetConnection("c1")
	assert.True(t, ok)

	s.RemoveConnection("c1")
	s.RemoveConnection("c1")
	_, ok = s.GetConnection("c1")
	assert.False(t, ok)
	assert.Equal(t, 1, s.ConnectionCount())

	// unknown connections are ignored
	assert.NotPanics(t, func() {
		s.ToConnection("gone", broadcast.EventError, nil)
		s.JoinRoom("gone", "ABC234")
		s.LeaveRoom("gone", "ABC234")
	})
}
