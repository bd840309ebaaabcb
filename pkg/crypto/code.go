package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a verification code
const CodeLength = 6

var randomInt = rand.Int

// GenerateVerificationCode returns a uniformly random code in
// [100000, 999999], always rendered as exactly six ASCII digits.
func GenerateVerificationCode() (string, error) {
	n, err := randomInt(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
