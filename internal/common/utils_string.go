package common

import (
	"crypto/rand"
	"fmt"
)

const randomStringCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomStringRejectAbove is the largest multiple of the charset length
// that fits in a byte, bytes at or above it are discarded to keep the
// distribution uniform
const randomStringRejectAbove = 256 - (256 % len(randomStringCharset))

// GenerateRandomString returns `length` characters from a
// cryptographically secure source
func GenerateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("failed to receive a positive length")
	}
	output := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(output) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buffer {
			if int(b) >= randomStringRejectAbove {
				continue
			}
			output = append(output, randomStringCharset[int(b)%len(randomStringCharset)])
			if len(output) == length {
				break
			}
		}
	}
	return string(output), nil
}
