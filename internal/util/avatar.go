package util

import (
	"blackjack-server/internal/rng"
)

var avatars = []string{
	"🦄", "🐱", "🐶", "🦊", "🐸", "🐵", "🐼", "🐯", "🐨", "🐰", "🦁", "🐮", "🐷", "🐙", "🐧", "🐤",
	"🦉", "🦋", "🐝", "🐲", "🦖", "🦕", "🦓", "🦒", "🦘", "🦥", "🦦", "🦨", "🦡", "🦔", "🐾",
}

var random rng.Generator = rng.Crypto{}

// RandomAvatar returns a random avatar for an account created without one
func RandomAvatar() string {
	return avatars[random.Intn(len(avatars))]
}

// IsValidAvatar returns true if the avatar is one of the supported choices
func IsValidAvatar(avatar string) bool {
	for _, a := range avatars {
		if a == avatar {
			return true
		}
	}

	return false
}
