package socket_io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsOrigin(t *testing.T) {
	assert.Equal(t, "*", corsOrigin(nil))
	assert.Equal(t, "http://localhost:5173", corsOrigin([]string{"http://localhost:5173"}))
	assert.Equal(t, []any{"http://a.example", "http://b.example"}, corsOrigin([]string{"http://a.example", "http://b.example"}))
}
