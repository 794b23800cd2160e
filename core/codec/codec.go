// Package codec maps text messages to integers and back. Both cryptosystems
// encrypt integers, so this is the boundary every plaintext crosses.
//
// The scheme reads the UTF-8 bytes of the message as base-256 digits, least
// significant first: byte i contributes b[i]·256ⁱ. It is deterministic and
// invertible; the base and digit order are a free choice and carry no
// security weight.
package codec

import (
	"errors"
	"math/big"
)

// ErrNotInvertible is returned for messages or integers that cannot survive
// a round trip through the integer form.
var ErrNotInvertible = errors.New("codec: value does not round-trip")

// Encode returns the integer form of message. A message whose final byte is
// NUL is rejected: it would be a zero high digit, lost in the integer form.
func Encode(message string) (*big.Int, error) {
	b := []byte(message)
	if len(b) > 0 && b[len(b)-1] == 0 {
		return nil, ErrNotInvertible
	}

	n := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		n.Lsh(n, 8)
		n.Add(n, big.NewInt(int64(b[i])))
	}
	return n, nil
}

// Decode inverts Encode. Negative integers encode no message.
func Decode(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", ErrNotInvertible
	}

	x := new(big.Int).Set(n)
	mask := big.NewInt(0xff)
	var out []byte
	for x.Sign() != 0 {
		digit := new(big.Int).And(x, mask)
		out = append(out, byte(digit.Uint64()))
		x.Rsh(x, 8)
	}
	return string(out), nil
}
