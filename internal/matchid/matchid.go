// Package matchid generates time-sortable match identifiers for log
// correlation: a 48-bit millisecond timestamp followed by 80 random bits,
// encoded as 26 characters of Crockford base32.
package matchid

import (
	"crypto/rand"
	"io"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh identifier. IDs created later sort lexically after
// IDs created earlier (within millisecond resolution).
func New() string {
	return newAt(time.Now(), rand.Reader)
}

func newAt(t time.Time, random io.Reader) string {
	var raw [16]byte

	ms := t.UnixMilli()
	raw[0] = byte(ms >> 40)
	raw[1] = byte(ms >> 32)
	raw[2] = byte(ms >> 24)
	raw[3] = byte(ms >> 16)
	raw[4] = byte(ms >> 8)
	raw[5] = byte(ms)

	if _, err := io.ReadFull(random, raw[6:]); err != nil {
		panic("matchid: read random bytes: " + err.Error())
	}

	return encode(raw)
}

// encode maps 128 bits to 26 base32 characters, top bits first. The first
// two input bits are dropped; 26 characters carry 130 bits.
func encode(raw [16]byte) string {
	var out [26]byte
	var acc uint32
	var bits uint
	pos := 25

	for i := 15; i >= 0; i-- {
		acc |= uint32(raw[i]) << bits
		bits += 8
		for bits >= 5 && pos >= 0 {
			out[pos] = alphabet[acc&0x1f]
			acc >>= 5
			bits -= 5
			pos--
		}
	}
	for pos >= 0 {
		out[pos] = alphabet[acc&0x1f]
		acc >>= 5
		pos--
	}
	return string(out[:])
}
