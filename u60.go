package bignum

import "math/big"

// U60Bits is the radix width of the alternate internal representation used
// wherever carry-safe arithmetic on 120-bit limbs would risk exceeding a
// machine word during witness computation.
const U60Bits = 60

const u60Mask = (uint64(1) << U60Bits) - 1

// U60Repr is a BigInt viewed as 60-bit u64 limbs, least significant first.
// Two 60-bit values sum to at most 61 bits, so a uint64 accumulator never
// overflows while adding or subtracting limb-by-limb.
type U60Repr struct {
	limbs []uint64
}

// FromLimbVec splits each 120-bit limb of limbs120 into a (low, high)
// 60-bit pair, producing a U60Repr of twice the length. Every input limb
// must be < 2^120; the caller (normalizeWide's contract) is responsible
// for that.
func FromLimbVec(limbs120 []*big.Int) *U60Repr {
	out := make([]uint64, 2*len(limbs120))
	for i, l := range limbs120 {
		lo, hi := Split60(l)
		out[2*i] = lo
		out[2*i+1] = hi
	}
	return &U60Repr{limbs: out}
}

// ToLimbVec recombines adjacent 60-bit pairs back into n 120-bit limbs.
// len(u.limbs) must equal 2*n.
func (u *U60Repr) ToLimbVec(n int) []*big.Int {
	if len(u.limbs) != 2*n {
		panic("U60Repr.ToLimbVec: length mismatch")
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = Join60(u.limbs[2*i], u.limbs[2*i+1])
	}
	return out
}

// Clone returns an independent copy.
func (u *U60Repr) Clone() *U60Repr {
	out := make([]uint64, len(u.limbs))
	copy(out, u.limbs)
	return &U60Repr{limbs: out}
}

// Len returns the number of 60-bit limbs.
func (u *U60Repr) Len() int { return len(u.limbs) }

// Add computes u+other as a same-length schoolbook sum with carry
// propagation, returning the result and the final carry-out (0 or 1). The
// two operands must have equal length.
func (u *U60Repr) Add(other *U60Repr) (*U60Repr, uint64) {
	if len(u.limbs) != len(other.limbs) {
		panic("U60Repr.Add: length mismatch")
	}
	out := make([]uint64, len(u.limbs))
	var carry uint64
	for i := range u.limbs {
		s := u.limbs[i] + other.limbs[i] + carry
		out[i] = s & u60Mask
		carry = s >> U60Bits
	}
	return &U60Repr{limbs: out}, carry
}

// Sub computes u-other as a same-length schoolbook difference with borrow
// propagation, returning the result and the final borrow-out (0 or 1). If
// u < other the result wraps (borrow-out is 1); callers must ensure u >=
// other when a non-wrapped result is required, per the spec's contract.
func (u *U60Repr) Sub(other *U60Repr) (*U60Repr, uint64) {
	if len(u.limbs) != len(other.limbs) {
		panic("U60Repr.Sub: length mismatch")
	}
	out := make([]uint64, len(u.limbs))
	var borrow uint64
	for i := range u.limbs {
		a := int64(u.limbs[i])
		b := int64(other.limbs[i]) + int64(borrow)
		d := a - b
		if d < 0 {
			d += int64(1) << U60Bits
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint64(d) & u60Mask
	}
	return &U60Repr{limbs: out}, borrow
}

// Gte reports whether u's integer value is >= other's. Both must be the
// same length.
func (u *U60Repr) Gte(other *U60Repr) bool {
	if len(u.limbs) != len(other.limbs) {
		panic("U60Repr.Gte: length mismatch")
	}
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] != other.limbs[i] {
			return u.limbs[i] > other.limbs[i]
		}
	}
	return true
}

// GetBit returns the i-th bit from the LSB (0 or 1).
func (u *U60Repr) GetBit(i int) uint64 {
	idx, pos := i/U60Bits, i%U60Bits
	if idx >= len(u.limbs) {
		return 0
	}
	return (u.limbs[idx] >> uint(pos)) & 1
}

// Shr right-shifts the represented integer by b bits, truncating. The
// result has the same limb count as the receiver.
func (u *U60Repr) Shr(b int) *U60Repr {
	out := make([]uint64, len(u.limbs))
	limbShift := b / U60Bits
	bitShift := uint(b % U60Bits)
	for i := range out {
		srcIdx := i + limbShift
		if srcIdx >= len(u.limbs) {
			out[i] = 0
			continue
		}
		v := u.limbs[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx+1 < len(u.limbs) {
			v |= (u.limbs[srcIdx+1] << (U60Bits - bitShift)) & u60Mask
		}
		out[i] = v & u60Mask
	}
	return &U60Repr{limbs: out}
}

// Increment adds 1 in place, returning the final carry-out (0 or 1).
func (u *U60Repr) Increment() uint64 {
	carry := uint64(1)
	for i := range u.limbs {
		if carry == 0 {
			break
		}
		s := u.limbs[i] + carry
		u.limbs[i] = s & u60Mask
		carry = s >> U60Bits
	}
	return carry
}

// ToBigInt folds the U60Repr back into a single integer, useful for tests
// and for bridging into big.Int-only code paths such as the Barrett
// correction step in reduce.go.
func (u *U60Repr) ToBigInt() *big.Int {
	res := new(big.Int)
	for i := len(u.limbs) - 1; i >= 0; i-- {
		res.Lsh(res, U60Bits)
		res.Add(res, new(big.Int).SetUint64(u.limbs[i]))
	}
	return res
}

// U60FromBigInt splits v into nbLimbs60 60-bit limbs, little-endian.
func U60FromBigInt(v *big.Int, nbLimbs60 int) *U60Repr {
	out := make([]uint64, nbLimbs60)
	tmp := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(u60Mask)
	for i := 0; i < nbLimbs60; i++ {
		out[i] = new(big.Int).And(tmp, mask).Uint64()
		tmp.Rsh(tmp, U60Bits)
	}
	if tmp.Sign() != 0 {
		panic("U60FromBigInt: value does not fit in nbLimbs60 limbs")
	}
	return &U60Repr{limbs: out}
}
