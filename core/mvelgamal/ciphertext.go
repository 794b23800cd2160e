package mvelgamal

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/pkc-lib/core/curve"
)

// ErrInvalidCiphertext is returned when a ciphertext fails basic validation.
var ErrInvalidCiphertext = errors.New("mvelgamal: invalid ciphertext")

// Ciphertext is the transmissible triple (R, c1, c2).
type Ciphertext struct {
	// R = k⋅P, the ephemeral public point.
	R curve.Point
	// C1 = sx⋅m1, C2 = sy⋅m2 (mod p), the masked message halves.
	C1, C2 *big.Int
}

// Valid returns true if the ciphertext passes basic validation.
func (ct *Ciphertext) Valid() bool {
	if ct == nil || ct.R.IsIdentity() || ct.C1 == nil || ct.C2 == nil {
		return false
	}
	return ct.C1.Sign() >= 0 && ct.C2.Sign() >= 0
}

func (Ciphertext) Domain() string {
	return "MV ElGamal Ciphertext"
}

// WriteTo writes a length-prefixed encoding of (Rx, Ry, c1, c2), so the
// ciphertext can be fed to a transcript hash. The ciphertext must pass Valid,
// the encoding has no representation for the identity.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	if !ct.Valid() {
		return 0, ErrInvalidCiphertext
	}

	var total int64
	var size [2]byte
	for _, v := range []*big.Int{ct.R.X(), ct.R.Y(), ct.C1, ct.C2} {
		buf := v.Bytes()
		binary.BigEndian.PutUint16(size[:], uint16(len(buf)))
		n, err := w.Write(size[:])
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
