package bignum

import "math/big"

// recompose reassembles a limb vector (base 2^LimbBits, least significant
// first) into its integer value. Limbs are not required to be individually
// bounded by 2^LimbBits: this is also used to fold non-normal-form (partly
// overflowed) limb vectors, as std/math/emulated's recompose does for its
// own non-normal-form elements.
func recompose(limbs []*big.Int) *big.Int {
	res := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		res.Lsh(res, LimbBits)
		res.Add(res, limbs[i])
	}
	return res
}

// decompose splits v into exactly nbLimbs limbs of LimbBits bits each,
// little-endian. Panics if v does not fit (callers are expected to size
// nbLimbs generously, as Params does).
func decompose(v *big.Int, nbLimbs int) []*big.Int {
	limbs := make([]*big.Int, nbLimbs)
	tmp := new(big.Int).Set(v)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), LimbBits), big.NewInt(1))
	for i := 0; i < nbLimbs; i++ {
		limbs[i] = new(big.Int).And(tmp, mask)
		tmp.Rsh(tmp, LimbBits)
	}
	if tmp.Sign() != 0 {
		panic("decompose: value does not fit in the requested number of limbs")
	}
	return limbs
}

// decomposeTopWide splits v into n limbs where the first n-1 are masked to
// LimbBits bits each and the last absorbs whatever remains unmasked. Used
// for the quotient produced by evaluate_quadratic_expression, whose top
// limb is allowed up to six bits beyond LimbBits.
func decomposeTopWide(v *big.Int, n int) []*big.Int {
	out := make([]*big.Int, n)
	tmp := new(big.Int).Set(v)
	for i := 0; i < n-1; i++ {
		out[i] = new(big.Int).And(tmp, mask120)
		tmp.Rsh(tmp, LimbBits)
	}
	out[n-1] = tmp
	return out
}

// cloneLimbs deep-copies a limb vector.
func cloneLimbs(limbs []*big.Int) []*big.Int {
	out := make([]*big.Int, len(limbs))
	for i, l := range limbs {
		out[i] = new(big.Int).Set(l)
	}
	return out
}

// padLimbs returns a copy of limbs zero-extended (or truncated, which must
// not discard any non-zero limb) to exactly n entries.
func padLimbs(limbs []*big.Int, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		if i < len(limbs) {
			out[i] = new(big.Int).Set(limbs[i])
		} else {
			out[i] = new(big.Int)
		}
	}
	for i := n; i < len(limbs); i++ {
		if limbs[i].Sign() != 0 {
			panic("padLimbs: truncation would discard a non-zero limb")
		}
	}
	return out
}
