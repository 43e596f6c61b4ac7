package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// codeSpan is the number of distinct codes; codes range over [100000, 999999],
// so the minimum value guarantees six digits without zero-padding.
const (
	codeMin  = 100000
	codeSpan = 900000
)

// NewCode returns a uniformly random 6-digit verification code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
