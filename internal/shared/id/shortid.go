// Package id generates short human-facing references such as allocation numbers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Crockford-style alphabet without I, L, O and U to avoid misreading on printed forms.
	alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	DefaultLength = 8
)

const (
	PrefixAllocation = "DOT"
	PrefixReturn     = "RES"
)

// Generate returns a random reference of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}

// NewReference returns "<prefix>-<random>", for example DOT-7K2M9QXA.
func NewReference(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "-" + s, nil
}
