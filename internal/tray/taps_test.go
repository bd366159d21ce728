//go:build unit

package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapQueue(t *testing.T) {
	q := newTapQueue()

	assert.True(t, q.Tap())
	// Pending tap absorbs the next one
	assert.False(t, q.Tap())

	<-q
	assert.True(t, q.Tap())
	assert.Len(t, q, 1)
}
