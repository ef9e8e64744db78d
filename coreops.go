package bignum

import (
	"crypto/sha256"
	"math/big"
)

// AddMod adds two range-valid limb vectors and reduces once against the
// modulus if the sum overflowed it. It assumes both operands are
// range-valid (< 2^modulus_bits); callers relying on a field-valid result
// must additionally call Field.AssertIsInField.
func AddMod(p Params, a, b []*big.Int) []*big.Int {
	n := int(p.NbLimbs())
	au, bu := FromLimbVec(a), FromLimbVec(b)
	sumU, carry := au.Add(bu)
	sum := sumU.ToBigInt()
	if carry != 0 {
		sum.Add(sum, new(big.Int).Lsh(big.NewInt(1), uint(sumU.Len()*U60Bits)))
	}
	modulus := recomposeLimbs(p.Modulus())
	if sum.Cmp(modulus) >= 0 {
		sum.Sub(sum, modulus)
	}
	return decompose(sum, n)
}

// Negate returns 2p-a in U60Repr, using double_modulus so the subtraction
// never underflows for any range-valid a.
func Negate(p Params, a []*big.Int) []*big.Int {
	n := int(p.NbLimbs())
	dm := FromLimbVec(p.DoubleModulus())
	au := FromLimbVec(padLimbs(a, n))
	res, borrow := dm.Sub(au)
	if borrow != 0 {
		panic("Negate: operand exceeds double_modulus")
	}
	return res.ToLimbVec(n)
}

// SubMod computes a-b (mod p) as AddMod(a, Negate(b)).
func SubMod(p Params, a, b []*big.Int) []*big.Int {
	return AddMod(p, a, Negate(p, b))
}

// MulMod multiplies a and b via p's preferred convolution routine and
// Barrett-reduces the 2N-1-limb product.
func MulMod(p Params, a, b []*big.Int) []*big.Int {
	_, remainder := MulModWithQuotient(p, a, b)
	return remainder
}

// MulModWithQuotient is MulMod but additionally returns the Barrett
// quotient.
func MulModWithQuotient(p Params, a, b []*big.Int) (quotient, remainder []*big.Int) {
	wide := MultiplyBig(p, a, b)
	return BarrettReduce(p, wide)
}

// PowMod computes a^e mod p via left-to-right binary exponentiation,
// squaring at every one of modulus_bits+1 iterations and multiplying in
// the base whenever the corresponding bit of e is set.
func PowMod(p Params, a []*big.Int, e *big.Int) []*big.Int {
	n := int(p.NbLimbs())
	bits := int(p.ModulusBits()) + 1
	result := decompose(big.NewInt(1), n)
	base := padLimbs(a, n)
	for i := bits - 1; i >= 0; i-- {
		result = MulMod(p, result, result)
		if e.Bit(i) == 1 {
			result = MulMod(p, result, base)
		}
	}
	return result
}

// InvMod computes a^-1 mod p via Fermat's little theorem. Correct only
// when p is prime; the caller is responsible for that precondition.
func InvMod(p Params, a []*big.Int) []*big.Int {
	modulus := recomposeLimbs(p.Modulus())
	exp := new(big.Int).Sub(modulus, big.NewInt(2))
	return PowMod(p, a, exp)
}

// DivMod computes a/b mod p as a * InvMod(b).
func DivMod(p Params, a, b []*big.Int) []*big.Int {
	return MulMod(p, a, InvMod(p, b))
}

// DeriveFromSeed is a deterministic, non-cryptographic hash-to-field
// helper for tests and fixtures. It fills N limbs from SHA-256 digests of
// the seed (incrementing the first byte of the hashed block between
// digests), 15 bytes per limb taken in (high, low) pairs from each 32-byte
// digest, then Barrett-reduces the raw value down to a field-valid result.
func DeriveFromSeed(p Params, seed []byte) []*big.Int {
	n := int(p.NbLimbs())
	block := make([]byte, len(seed))
	copy(block, seed)
	if len(block) == 0 {
		block = []byte{0}
	}
	limbs := make([]*big.Int, n)
	filled := 0
	for filled < n {
		digest := sha256.Sum256(block)
		hi := new(big.Int).SetBytes(digest[0:15])
		lo := new(big.Int).SetBytes(digest[15:30])
		limbs[filled] = hi
		filled++
		if filled < n {
			limbs[filled] = lo
			filled++
		}
		block[0]++
	}
	_, remainder := BarrettReduce(p, padLimbsGrow(limbs, 2*n+1))
	return remainder
}
