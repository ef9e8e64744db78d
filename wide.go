package bignum

import "math/big"

// WideVec is a k*N-element ordered sequence of limbs, addressed either by a
// single logical index or by (segment, offset) where segment = i/N and
// offset = i%N. It is the container every intermediate product wider than
// N limbs (convolution output, Barrett's internal products) is built in
// before being normalized back down to limb form.
type WideVec struct {
	n     int
	limbs []*big.Int
}

// NewWideVec allocates a WideVec of n*k zero limbs.
func NewWideVec(n, k int) *WideVec {
	limbs := make([]*big.Int, n*k)
	for i := range limbs {
		limbs[i] = new(big.Int)
	}
	return &WideVec{n: n, limbs: limbs}
}

// WrapWideVec adapts an existing flat limb slice into a WideVec without
// copying.
func WrapWideVec(n int, limbs []*big.Int) *WideVec {
	return &WideVec{n: n, limbs: limbs}
}

func (w *WideVec) Len() int { return len(w.limbs) }

func (w *WideVec) At(i int) *big.Int { return w.limbs[i] }

func (w *WideVec) Set(i int, v *big.Int) { w.limbs[i] = v }

func (w *WideVec) AddAssignAt(i int, v *big.Int) {
	w.limbs[i].Add(w.limbs[i], v)
}

func (w *WideVec) SubAssignAt(i int, v *big.Int) {
	w.limbs[i].Sub(w.limbs[i], v)
}

// Segment returns the (segment, offset) decomposition of a logical index.
func (w *WideVec) Segment(i int) (segment, offset int) {
	return i / w.n, i % w.n
}

// Slice returns the flat backing limbs.
func (w *WideVec) Slice() []*big.Int { return w.limbs }

// Normalize carries every limb's excess above 2^LimbBits into the next
// position, in place, asserting the final carry-out is zero.
func (w *WideVec) Normalize() {
	w.limbs = normalizeWide(w.limbs)
}
