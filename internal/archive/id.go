package archive

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Crockford base32 alphabet for encoding hand IDs. Lowercase, no
// i/l/o/u, so the digits sort the same as the raw bytes.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource interface for dependency injection of randomness
type RandSource interface {
	Intn(n int) int
}

// NewID creates a hand ID: a UUIDv7 encoded as a 26-character base32
// string, so lexicographic order is creation order.
func NewID() string {
	return newIDAt(time.Now(), nil)
}

// NewIDWithRandSource creates a hand ID using the provided RandSource,
// for deterministic tests.
func NewIDWithRandSource(now time.Time, randSource RandSource) string {
	return newIDAt(now, randSource)
}

func newIDAt(now time.Time, randSource RandSource) string {
	var uuid [16]byte

	// UUIDv7: 48-bit millisecond timestamp, then version and variant
	// bits over random data.
	ms := now.UnixMilli()
	uuid[0] = byte(ms >> 40)
	uuid[1] = byte(ms >> 32)
	uuid[2] = byte(ms >> 24)
	uuid[3] = byte(ms >> 16)
	uuid[4] = byte(ms >> 8)
	uuid[5] = byte(ms)

	if randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(uuid[6:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encodeBase32(uuid)
}

// encodeBase32 encodes a 128-bit UUID as a 26-character base32 string
func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)

	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8

		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}

		result[i] = alphabet[value]
	}

	return string(result)
}

// ValidateID checks that a hand ID is 26 characters of valid base32.
func ValidateID(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("hand ID must be exactly 26 characters, got %d", len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		valid := false
		for _, validChar := range alphabet {
			if char == validChar {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
