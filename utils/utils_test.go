package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDShape(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 12)
	for _, r := range id {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "unexpected rune %q in id %q", r, id)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %q after %d draws", id, i)
		seen[id] = true
	}
}
