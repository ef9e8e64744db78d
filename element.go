package bignum

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// BigInt is the in-circuit value type: NbLimbs() limbs of frontend.Variable,
// base 2^LimbBits, least significant first. BigInt is a value type: every
// operator on [Field] returns a new BigInt rather than mutating one.
type BigInt[T Params] struct {
	Limbs []frontend.Variable
}

// NewBigInt builds an all-zero BigInt with T's limb count.
func NewBigInt[T Params]() BigInt[T] {
	var p T
	limbs := make([]frontend.Variable, p.NbLimbs())
	for i := range limbs {
		limbs[i] = 0
	}
	return BigInt[T]{Limbs: limbs}
}

// ValueOf builds a constant BigInt from a big.Int value.
func ValueOf[T Params](v *big.Int) BigInt[T] {
	var p T
	limbs := decompose(v, int(p.NbLimbs()))
	return FromBigLimbs[T](limbs)
}

// FromLimbs wraps an existing frontend.Variable limb slice (typically hint
// outputs) as a BigInt.
func FromLimbs[T Params](limbs []frontend.Variable) BigInt[T] {
	return BigInt[T]{Limbs: limbs}
}

// FromBigLimbs lifts already-split *big.Int limbs into constant
// frontend.Variable limbs.
func FromBigLimbs[T Params](limbs []*big.Int) BigInt[T] {
	vars := make([]frontend.Variable, len(limbs))
	for i, l := range limbs {
		vars[i] = new(big.Int).Set(l)
	}
	return BigInt[T]{Limbs: vars}
}

// ToBigLimbs converts a BigInt built entirely out of *big.Int constants
// (e.g. via ValueOf/FromBigLimbs) back into plain limbs. It panics if any
// limb is a live, unresolved circuit variable; it is a witness-assignment
// and test-fixture helper, not something to call mid-circuit.
func ToBigLimbs[T Params](b BigInt[T]) []*big.Int {
	limbs := make([]*big.Int, len(b.Limbs))
	for i, l := range b.Limbs {
		limbs[i] = mustConstBig(l)
	}
	return limbs
}

// ToBig recomposes a constant BigInt into its integer value.
func ToBig[T Params](b BigInt[T]) *big.Int {
	return recompose(ToBigLimbs[T](b))
}

func mustConstBig(v frontend.Variable) *big.Int {
	switch vv := v.(type) {
	case *big.Int:
		return vv
	case big.Int:
		return &vv
	case int:
		return big.NewInt(int64(vv))
	case int64:
		return big.NewInt(vv)
	default:
		panic("mustConstBig: limb is not a resolved constant")
	}
}

// FromBytesBE converts a big-endian byte slice into a constant BigInt,
// asserting in Go (not in-circuit — see Field.FromBytesBE for the
// constrained version) that it fits the parameter set's modulus bit
// length.
func FromBytesBE[T Params](data []byte) BigInt[T] {
	var p T
	v := new(big.Int).SetBytes(data)
	if uint32(v.BitLen()) > p.ModulusBits() {
		panic("FromBytesBE: value exceeds modulus bit length")
	}
	return ValueOf[T](v)
}

// BytesBE renders a constant BigInt as a fixed-length big-endian byte
// slice sized to the parameter set's modulus bit length.
func BytesBE[T Params](b BigInt[T]) []byte {
	var p T
	byteLen := (int(p.ModulusBits()) + 7) / 8
	out := make([]byte, byteLen)
	ToBig[T](b).FillBytes(out)
	return out
}
