package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the standard secp256k1 parameters (y² = x³ + 7) and its
// conventional base point, for callers who want a well-studied group instead
// of a randomly generated curve. The parameters are taken from the dcrec
// implementation.
func Secp256k1() (Curve, Point) {
	p := secp256k1.S256().Params()
	c := Curve{
		A: new(big.Int),
		B: new(big.Int).Set(p.B),
		P: new(big.Int).Set(p.P),
	}
	return c, NewPoint(p.Gx, p.Gy)
}
