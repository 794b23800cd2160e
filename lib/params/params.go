package params

const (
	// MillerRabinRounds is the number of random bases tried by the
	// probabilistic primality test. A composite survives each round with
	// probability at most 1/4, so the false-positive probability is bounded
	// by 4⁻²⁰.
	MillerRabinRounds = 20

	// PrimeSearchBudget bounds the number of random candidates examined when
	// searching for a prime of a given bit length. By the prime number
	// theorem a b-bit odd candidate is prime with probability ≈ 2/(b·ln 2),
	// so for the bit lengths used here the budget is never approached in
	// practice.
	PrimeSearchBudget = 100_000

	// CurveSearchBudget bounds the number of (A, x0, y0) triples tried when
	// generating a random elliptic curve with a usable base point.
	CurveSearchBudget = 10_000

	// PointSearchBudget bounds the number of candidate x coordinates tried
	// when searching for a point on a given curve. Roughly half of all x
	// values yield a quadratic residue, so exhaustion indicates a broken
	// curve rather than bad luck.
	PointSearchBudget = 10_000

	// ScalarSearchBudget bounds resampling loops for private and ephemeral
	// scalars that must avoid degenerate group elements.
	ScalarSearchBudget = 10_000

	// RSADefaultBits is the default bit length of each RSA prime factor.
	RSADefaultBits = 1000

	// MVDefaultBits is the default bit length of the MV ElGamal field prime.
	MVDefaultBits = 512

	// RSAEncryptionExp is the encryption exponent tried first during RSA key
	// generation, used whenever it is coprime to the totient.
	RSAEncryptionExp = 65537
)
