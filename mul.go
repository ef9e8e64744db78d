package bignum

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// ring bundles the four operations schoolbook and Karatsuba convolution
// need, so the same recursive implementation can run either over *big.Int
// during witness computation or over frontend.Variable during constraint
// emission, without duplicating the recursion.
type ring[E any] struct {
	zero func() E
	add  func(a, b E) E
	sub  func(a, b E) E
	mul  func(a, b E) E
}

func bigIntRing() ring[*big.Int] {
	return ring[*big.Int]{
		zero: func() *big.Int { return new(big.Int) },
		add:  func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
		sub:  func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
		mul:  func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
	}
}

func variableRing(api frontend.API) ring[frontend.Variable] {
	return ring[frontend.Variable]{
		zero: func() frontend.Variable { return 0 },
		add:  func(a, b frontend.Variable) frontend.Variable { return api.Add(a, b) },
		sub:  func(a, b frontend.Variable) frontend.Variable { return api.Sub(a, b) },
		mul:  func(a, b frontend.Variable) frontend.Variable { return api.Mul(a, b) },
	}
}

// karatsubaThreshold is the operand length at or below which the recursive
// split stops paying for itself and schoolbook multiplication is used
// directly.
const karatsubaThreshold = 4

// schoolbookConv is the reference O(len(a)*len(b)) convolution: res[i+j] +=
// a[i]*b[j] for all i, j. Produces len(a)+len(b)-1 limbs.
func schoolbookConv[E any](r ring[E], a, b []E) []E {
	out := make([]E, len(a)+len(b)-1)
	for i := range out {
		out[i] = r.zero()
	}
	for i, av := range a {
		for j, bv := range b {
			out[i+j] = r.add(out[i+j], r.mul(av, bv))
		}
	}
	return out
}

func addPadded[E any](r ring[E], short, long []E, n int) []E {
	out := make([]E, n)
	for i := 0; i < n; i++ {
		var s E
		if i < len(short) {
			s = short[i]
		} else {
			s = r.zero()
		}
		var l E
		if i < len(long) {
			l = long[i]
		} else {
			l = r.zero()
		}
		out[i] = r.add(s, l)
	}
	return out
}

// karatsubaConv is a recursive Karatsuba convolution generic over the
// element ring. It splits an N-limb operand into a low half of length
// floor(N/2) and a high half of length ceil(N/2), computes the three
// sub-products r0 = lo*lo, r2 = hi*hi, r1 = (lo+hi)*(lo+hi)-r0-r2, and
// superposes res[i]+=r0[i], res[i+L]+=r1[i], res[i+2L]+=r2[i] where L is
// the low-half length. The recursion naturally re-derives the spec's
// "two-level Karatsuba" for sizes like 26 and 34: every sub-product is
// itself split again as long as its length exceeds karatsubaThreshold,
// rather than being named as a distinct routine.
func karatsubaConv[E any](r ring[E], a, b []E) []E {
	n := len(a)
	if n != len(b) {
		panic("karatsubaConv: operand length mismatch")
	}
	if n <= karatsubaThreshold {
		return schoolbookConv(r, a, b)
	}
	lo := n / 2
	hi := n - lo
	aLo, aHi := a[:lo], a[lo:]
	bLo, bHi := b[:lo], b[lo:]

	r0 := karatsubaConv(r, aLo, bLo)
	r2 := karatsubaConv(r, aHi, bHi)

	aSum := addPadded(r, aLo, aHi, hi)
	bSum := addPadded(r, bLo, bHi, hi)
	rMid := karatsubaConv(r, aSum, bSum)

	r1 := make([]E, len(rMid))
	copy(r1, rMid)
	for i, v := range r0 {
		r1[i] = r.sub(r1[i], v)
	}
	for i, v := range r2 {
		r1[i] = r.sub(r1[i], v)
	}

	out := make([]E, 2*n-1)
	for i := range out {
		out[i] = r.zero()
	}
	for i, v := range r0 {
		out[i] = r.add(out[i], v)
	}
	for i, v := range r1 {
		out[i+lo] = r.add(out[i+lo], v)
	}
	for i, v := range r2 {
		out[i+2*lo] = r.add(out[i+2*lo], v)
	}
	return out
}

// SchoolbookBig multiplies two limb vectors of *big.Int via schoolbook
// convolution, returning 2N-1 unreduced limbs.
func SchoolbookBig(a, b []*big.Int) []*big.Int {
	return schoolbookConv(bigIntRing(), a, b)
}

// KaratsubaBig multiplies two limb vectors of *big.Int via the recursive
// Karatsuba convolution, returning 2N-1 unreduced limbs.
func KaratsubaBig(a, b []*big.Int) []*big.Int {
	return karatsubaConv(bigIntRing(), a, b)
}

// MultiplyBig dispatches to schoolbook or Karatsuba according to p's
// preferred multiplication routine. Both produce identical results; the
// in-circuit counterpart that makes the same choice is MultiplyVar.
func MultiplyBig(p Params, a, b []*big.Int) []*big.Int {
	if p.PreferredMul() == Schoolbook {
		return SchoolbookBig(a, b)
	}
	return KaratsubaBig(a, b)
}

// MultiplyVar is MultiplyBig's in-circuit counterpart, operating on
// frontend.Variable limb vectors.
func MultiplyVar(api frontend.API, p Params, a, b []frontend.Variable) []frontend.Variable {
	rg := variableRing(api)
	if p.PreferredMul() == Schoolbook {
		return schoolbookConv(rg, a, b)
	}
	return karatsubaConv(rg, a, b)
}
