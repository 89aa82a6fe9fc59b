package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateUniqueID creates a secure random hex string from length random bytes
func GenerateUniqueID(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateShortID creates a secure random lowercase alphanumeric string of length n
func GenerateShortID(n int) (string, error) {
	max := big.NewInt(int64(len(shortIDAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = shortIDAlphabet[idx.Int64()]
	}
	return string(out), nil
}
