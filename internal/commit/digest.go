// Package commit implements the digest primitive every protocol stage
// builds its commitments from: SHA-512 over raw bytes or over the
// canonical JSON form of a structured value.
package commit

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// Digest is a hex-encoded SHA-512 digest
type Digest string

// SumBytes hashes a raw byte payload
func SumBytes(b []byte) Digest {
	sum := sha512.Sum512(b)
	return Digest(hex.EncodeToString(sum[:]))
}

// SumString hashes a text payload verbatim (UTF-8 bytes)
func SumString(s string) Digest {
	return SumBytes([]byte(s))
}

// Sum hashes a value. Strings and byte slices are hashed verbatim;
// anything else is first serialized to canonical JSON.
func Sum(value any) (Digest, error) {
	switch v := value.(type) {
	case string:
		return SumString(v), nil
	case []byte:
		return SumBytes(v), nil
	default:
		canonical, err := CanonicalJSON(value)
		if err != nil {
			return "", err
		}
		return SumBytes(canonical), nil
	}
}

// CanonicalJSON serializes a structured value to its canonical form:
// compact JSON with object keys in sorted order. encoding/json sorts
// map keys; struct types used as digest input must declare their
// fields in key-sorted order.
func CanonicalJSON(value any) ([]byte, error) {
	return json.Marshal(value)
}
