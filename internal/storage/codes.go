package storage

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// CodeLength is the number of characters in a group join code.
	CodeLength = 6

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// MaxCodeAttempts bounds how many codes a store draws before giving up.
	MaxCodeAttempts = 16
)

// NewGroupCode draws a random join code of CodeLength characters from A-Z and 0-9.
func NewGroupCode() (string, error) {
	var b strings.Builder
	b.Grow(CodeLength)
	size := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("failed to generate group code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeCode upper-cases and trims a user-entered join code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
