package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// GenerateMatchID - generates a unique identifier for a match.
func GenerateMatchID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return ""
	}
	return n.String()
}

// GeneratePlayerID - generates a new unique player identifier.
func GeneratePlayerID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-player-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
