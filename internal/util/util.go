package util

import (
	"github.com/google/uuid"
)

// RandomUsername generates a random username suitable for testing
func RandomUsername() string {
	return "player-" + uuid.New().String()
}
