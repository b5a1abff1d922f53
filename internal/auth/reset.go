package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

const ResetTokenTTL = time.Hour

// NewResetToken returns a random token for the user and the hash to store.
func NewResetToken() (token, hash string) {
	token = uuid.NewString()
	return token, HashResetToken(token)
}

func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
