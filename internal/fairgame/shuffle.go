package fairgame

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// secureIntn draws a uniform int in [0, n) from crypto/rand
func secureIntn(n int) int {
	j, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("failed to read secure randomness: " + err.Error())
	}
	return int(j.Int64())
}

// secureShuffle performs an unbiased Fisher-Yates shuffle in place,
// drawing every index from crypto/rand.
func secureShuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := secureIntn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// randomHex returns n random bytes from crypto/rand, hex encoded
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read secure randomness: " + err.Error())
	}
	return hex.EncodeToString(b)
}
