// Package service implements link creation, resolution, click recording and
// click statistics on top of a link store.
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// DefaultAlphabet leaves out 0, O, o, 1, l and I.
	DefaultAlphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

	DefaultCodeLength = 8
	MinCodeLength     = 6

	// minAliasLength also keeps aliases off the fixed top-level routes.
	minAliasLength = 6
	maxAliasLength = 34
)

// CodeGenerator draws random short codes from an alphabet.
type CodeGenerator struct {
	length   int
	alphabet string
	max      *big.Int
}

// NewCodeGenerator returns a generator for codes of the given length.
// Lengths below MinCodeLength are raised to it.
func NewCodeGenerator(length int) *CodeGenerator {
	if length < MinCodeLength {
		length = MinCodeLength
	}

	return &CodeGenerator{
		length:   length,
		alphabet: DefaultAlphabet,
		max:      big.NewInt(int64(len(DefaultAlphabet))),
	}
}

func (g *CodeGenerator) Length() int {
	return g.length
}

// Generate returns a new candidate code. Uniqueness is enforced by the store.
func (g *CodeGenerator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(g.length)

	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, g.max)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		sb.WriteByte(g.alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// ValidateAlias checks the shape of a custom alias. It does not check that
// the alias is free.
func ValidateAlias(alias string) error {
	if len(alias) < minAliasLength || len(alias) > maxAliasLength {
		return fmt.Errorf("%w: length must be %d to %d", ErrInvalidAlias, minAliasLength, maxAliasLength)
	}

	for i := 0; i < len(alias); i++ {
		c := alias[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(alias)-1 {
				return fmt.Errorf("%w: must not start or end with '-'", ErrInvalidAlias)
			}
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidAlias, c)
		}
	}

	return nil
}
