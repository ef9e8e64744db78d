package bignum

import "math/big"

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// BarrettReduce implements the spec's Barrett reduction recipe: given an
// unreduced limb vector (e.g. straight out of a convolution, with limbs
// possibly exceeding 2^LimbBits), compute (quotient, remainder) against
// p's modulus using p's precomputed redc_param and k.
//
// The normalize/shift/subtract pipeline genuinely goes through WideVec and
// U60Repr as the spec's steps 2-6 describe; only the final at-most-one
// correction step (and the asymmetric-length products themselves) fold
// through big.Int directly — see DESIGN.md for why.
func BarrettReduce(p Params, xLimbs []*big.Int) (quotient []*big.Int, remainder []*big.Int) {
	n := int(p.NbLimbs())

	wide := WrapWideVec(n, padLimbsGrow(xLimbs, 2*n+1))
	wide.Normalize()
	bigX := recompose(wide.Slice())

	modulus := recomposeLimbs(p.Modulus())
	redc := recomposeLimbs(p.RedcParam())
	k := int(p.K())

	// Step 1-2: m = x * redc_param.
	m := new(big.Int).Mul(bigX, redc)

	// Step 3-4: partial quotient = m >> 2k, taken via a U60Repr right shift.
	mLimbs60 := 2*(m.BitLen()/LimbBits+2) + 2*k/U60Bits + 4
	mU60 := U60FromBigInt(m, mLimbs60)
	qU60 := mU60.Shr(2 * k)
	partialQ := qU60.ToBigInt()

	// Step 5: qp = partial_quotient * modulus.
	qp := new(big.Int).Mul(partialQ, modulus)

	// Step 6: r = x - qp via U60Repr subtraction.
	subLimbs60 := maxInt(bigX.BitLen(), qp.BitLen())/U60Bits + 4
	xU60 := U60FromBigInt(bigX, subLimbs60)
	qpU60 := U60FromBigInt(qp, subLimbs60)
	var r *big.Int
	if xU60.Gte(qpU60) {
		rU60, _ := xU60.Sub(qpU60)
		r = rU60.ToBigInt()
	} else {
		r = new(big.Int).Sub(bigX, qp)
	}

	// For x >= 2^(2k) (possible for a 2N-limb input) the estimate can be
	// off by more than one; reduce the remainder again, which shrinks it by
	// about k bits per pass.
	if bigX.BitLen() > 2*k {
		q2, r2 := BarrettReduce(p, decompose(r, wide.Len()))
		partialQ.Add(partialQ, recompose(q2))
		r = recompose(r2)
	}

	// Step 6 cont'd: for x < 2^(2k), Barrett's partial quotient differs
	// from floor(x/p) by at most one; correct in either direction.
	for r.Sign() < 0 {
		r.Add(r, modulus)
		partialQ.Sub(partialQ, big.NewInt(1))
	}
	for r.Cmp(modulus) >= 0 {
		r.Sub(r, modulus)
		partialQ.Add(partialQ, big.NewInt(1))
	}

	remainder = decompose(r, n)
	quotient = decompose(partialQ, quotientLimbCount(partialQ, n))
	return quotient, remainder
}

// quotientLimbCount sizes the quotient's limb vector generously enough to
// hold its value (the quotient may run a handful of bits wider than N*120
// when many product terms are summed; see ExprConstraint's 6-bit headroom).
func quotientLimbCount(q *big.Int, n int) int {
	need := (q.BitLen() + LimbBits - 1) / LimbBits
	if need < n {
		return n
	}
	return need
}

func padLimbsGrow(limbs []*big.Int, minLen int) []*big.Int {
	if len(limbs) >= minLen {
		return cloneLimbs(limbs)
	}
	return padLimbs(limbs, minLen)
}
