package joincode

import (
	"crypto/rand"
	"fmt"
)

// Alphabet avoids 0/O and 1/I so codes survive being read aloud or written
// on a whiteboard.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const Length = 8

// New generates a random join code of the given length.
func New(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
