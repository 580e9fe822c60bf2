package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCode returns a random hex string of 2*length characters, used for
// object storage file names.
func GenerateCode(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
