package bignum

import "math/big"

var (
	mask120 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), LimbBits), big.NewInt(1))
	mask60  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 60), big.NewInt(1))
)

// Split120 splits x into (lo, hi) such that x = lo + hi*2^120, lo < 2^120.
// Unconstrained: used only during witness computation, never against a
// frontend.Variable.
func Split120(x *big.Int) (lo, hi *big.Int) {
	lo = new(big.Int).And(x, mask120)
	hi = new(big.Int).Rsh(x, LimbBits)
	return lo, hi
}

// Split60 splits the low 120 bits of x into two 60-bit halves. x is assumed
// to be < 2^120; bits beyond that are silently dropped, matching the
// spec's unconstrained BitSplit contract.
func Split60(x *big.Int) (lo, hi uint64) {
	lo = new(big.Int).And(x, mask60).Uint64()
	hi = new(big.Int).And(new(big.Int).Rsh(x, 60), mask60).Uint64()
	return lo, hi
}

// Join60 recombines a 60-bit low/high pair into a single 120-bit limb.
func Join60(lo, hi uint64) *big.Int {
	res := new(big.Int).SetUint64(hi)
	res.Lsh(res, 60)
	res.Add(res, new(big.Int).SetUint64(lo))
	return res
}

// normalizeWide walks a limb vector whose entries may exceed 2^120 (a
// "wide", unreduced result, e.g. straight out of a convolution) and carries
// every excess into the next position so every limb ends up strictly
// below 2^120. The caller must size limbs generously
// enough that the final carry-out is zero; normalizeWide asserts this.
func normalizeWide(limbs []*big.Int) []*big.Int {
	out := cloneLimbs(limbs)
	for i := 0; i < len(out)-1; i++ {
		lo, hi := Split120(out[i])
		out[i] = lo
		out[i+1].Add(out[i+1], hi)
	}
	lo, hi := Split120(out[len(out)-1])
	if hi.Sign() != 0 {
		panic("normalizeWide: value overflows the provided limb count")
	}
	out[len(out)-1] = lo
	return out
}
