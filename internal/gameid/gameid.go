// Package gameid generates opaque, unique game identifiers: a UUIDv7
// encoded as a 26-character Crockford base32 string, sortable by
// creation time.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh game id
func New() string {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then random bits with the UUIDv7
	// version and variant markers.
	ms := uint64(time.Now().UnixMilli())
	for i := 0; i < 6; i++ {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encode(uuid)
}

// encode packs the 128 bits into 26 base32 characters, five bits at a
// time, streaming through a bit accumulator.
func encode(data [16]byte) string {
	var b strings.Builder
	b.Grow(26)

	var acc uint32
	bits := 0
	emit := func() {
		for bits >= 5 {
			bits -= 5
			b.WriteByte(alphabet[(acc>>bits)&0x1f])
		}
	}
	for _, octet := range data {
		acc = acc<<8 | uint32(octet)
		bits += 8
		emit()
	}
	// 128 = 25*5 + 3: pad the tail to a final character.
	acc <<= 5 - bits
	b.WriteByte(alphabet[acc&0x1f])
	return b.String()
}

// Validate checks that id is a well-formed game id
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game id must be 26 characters, got %d", len(id))
	}
	// The leading character carries only 3 significant bits.
	if id[0] > '7' {
		return fmt.Errorf("game id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
