package code

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// Length is the fixed code length in hex characters.
	Length = 8
	// MaxGenerateAttempts bounds collision retries during issuing.
	MaxGenerateAttempts = 10
)

var ErrGenerationExhausted = errors.New("code generation attempts exhausted")

// Generator produces candidate code values. Uniqueness is enforced by
// the storage layer; callers retry on collision up to
// MaxGenerateAttempts.
type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) Generate() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
