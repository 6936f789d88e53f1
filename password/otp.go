package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpDigits = "0123456789"

// GenerateOTP returns a random numeric code of the given length, drawn from
// crypto/rand. Leading zeros are allowed: the code is a string, not a number.
func GenerateOTP(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password: otp length must be positive (got: %d)", length)
	}
	code := make([]byte, length)
	max := big.NewInt(int64(len(otpDigits)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("password: generate otp: %w", err)
		}
		code[i] = otpDigits[n.Int64()]
	}
	return string(code), nil
}
