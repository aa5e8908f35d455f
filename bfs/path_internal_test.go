package bfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) Solved() bool { return l == "goal" }

// TestPath_ExtendCopiesMoves guards against siblings sharing the parent's backing array.
func TestPath_ExtendCopiesMoves(t *testing.T) {
	moves := make([]string, 1, 8) // spare capacity would be shared by a naive append
	moves[0] = "first"
	parent := &Path[label]{State: "start", Moves: moves}

	left := parent.extend("left", "a")
	right := parent.extend("right", "goal")

	assert.Equal(t, []string{"first"}, parent.Moves)
	assert.Equal(t, []string{"first", "left"}, left.Moves)
	assert.Equal(t, []string{"first", "right"}, right.Moves)
	assert.False(t, left.Solved())
	assert.True(t, right.Solved())
	assert.Equal(t, 2, right.Len())
}
