package mvelgamal

import (
	"errors"
	"math/big"

	"github.com/mr-shifu/pkc-lib/core/codec"
)

var (
	// ErrMessageTooLarge is returned when either encoded message half is
	// not strictly smaller than the field prime.
	ErrMessageTooLarge = errors.New("mvelgamal: message too large for field size")

	// ErrInvalidEncoding is returned when field elements cannot be mapped
	// back to text.
	ErrInvalidEncoding = errors.New("mvelgamal: invalid message encoding")
)

// Encode splits the message into two halves and packs each into a field
// element with the shared base-256 codec. Both halves must encode strictly
// below p.
func Encode(message string, p *big.Int) (m1, m2 *big.Int, err error) {
	half := len(message) / 2

	if m1, err = encodeHalf(message[:half], p); err != nil {
		return nil, nil, err
	}
	if m2, err = encodeHalf(message[half:], p); err != nil {
		return nil, nil, err
	}
	return m1, m2, nil
}

func encodeHalf(half string, p *big.Int) (*big.Int, error) {
	m, err := codec.Encode(half)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	if m.Cmp(p) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return m, nil
}

// Decode inverts Encode by decoding and concatenating the two halves.
func Decode(m1, m2 *big.Int) (string, error) {
	first, err := codec.Decode(m1)
	if err != nil {
		return "", ErrInvalidEncoding
	}
	second, err := codec.Decode(m2)
	if err != nil {
		return "", ErrInvalidEncoding
	}
	return first + second, nil
}
