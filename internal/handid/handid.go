// Package handid generates opaque, time-sortable record ids: a UUIDv7
// encoded as a 26-character Crockford base32 string.
package handid

import (
	"fmt"

	"github.com/google/uuid"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh id. IDs sort lexicographically in creation order
// because the underlying UUIDv7 is timestamp-prefixed.
func New() string {
	id := uuid.Must(uuid.NewV7())
	return encodeBase32(id)
}

// encodeBase32 packs the 128 UUID bits into 26 base32 characters,
// 5 bits per character, big-endian
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

// Validate checks that an id is 26 characters of the base32 alphabet
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("handid: id must be 26 characters, got %d", len(id))
	}
	for i := 0; i < len(id); i++ {
		valid := false
		for j := 0; j < len(alphabet); j++ {
			if id[i] == alphabet[j] {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("handid: invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}
