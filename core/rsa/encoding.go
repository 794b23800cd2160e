package rsa

import (
	"errors"
	"math/big"

	"github.com/mr-shifu/pkc-lib/core/codec"
)

var (
	// ErrMessageTooLarge is returned when the integer encoding of a message
	// would not be strictly smaller than the modulus it is encrypted under.
	ErrMessageTooLarge = errors.New("rsa: message too large for key size")

	// ErrInvalidEncoding is returned when a value cannot be mapped back to
	// the text it supposedly encodes.
	ErrInvalidEncoding = errors.New("rsa: invalid message encoding")
)

// Encode maps a text message to an integer in [0, modulus) with the shared
// base-256 codec.
func Encode(message string, modulus *big.Int) (*big.Int, error) {
	n, err := codec.Encode(message)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	if n.Cmp(modulus) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return n, nil
}

// Decode inverts Encode.
func Decode(n *big.Int) (string, error) {
	message, err := codec.Decode(n)
	if err != nil {
		return "", ErrInvalidEncoding
	}
	return message, nil
}
