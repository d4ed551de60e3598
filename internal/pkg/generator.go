package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a new random id for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}
