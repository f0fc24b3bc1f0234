// Package refcode encodes a numeric Telegram id into a short shareable
// referral code and back. The mapping is a bijection: Decode(Encode(id)) == id
// for every non-negative id, so an incoming code resolves directly to the
// referrer without a lookup table.
package refcode

import "errors"

// Alphabet without easily confused characters (0/O, 1/I/l, 8/B).
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ2345679"

const base = uint64(len(alphabet))

// codeMask obfuscates sequential ids so neighbouring users do not get
// neighbouring codes. XOR keeps the mapping invertible.
const codeMask uint64 = 0x5DEECE66D

var ErrInvalidCode = errors.New("invalid referral code")

var charIndex = func() map[byte]uint64 {
	m := make(map[byte]uint64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = uint64(i)
	}
	return m
}()

// Encode converts a non-negative id into a referral code.
func Encode(id int64) string {
	u := uint64(id) ^ codeMask

	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = alphabet[u%base]
		u /= base
		if u == 0 {
			break
		}
	}
	return string(buf[i:])
}

// Decode converts a referral code back into the id it was generated from.
func Decode(code string) (int64, error) {
	if code == "" || len(code) > 14 {
		return 0, ErrInvalidCode
	}

	var u uint64
	for i := 0; i < len(code); i++ {
		d, ok := charIndex[code[i]]
		if !ok {
			return 0, ErrInvalidCode
		}
		if u > (^uint64(0)-d)/base {
			return 0, ErrInvalidCode
		}
		u = u*base + d
	}

	u ^= codeMask
	if u > uint64(1)<<63-1 {
		return 0, ErrInvalidCode
	}
	return int64(u), nil
}
