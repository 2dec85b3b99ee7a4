package utils

import (
	"strings"

	"github.com/google/uuid"
)

// idLength is enough randomness for a single session's entity count
// (hundreds of ids, not millions); there is no collision check.
const idLength = 12

// NewID returns a short alphanumeric identifier for a new project,
// section or item. Ids are assigned once at creation and never change.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:idLength]
}
