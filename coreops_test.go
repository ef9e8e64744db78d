package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// ringLawsFor exercises the spec's §8 ring-law properties for a given
// parameter set using derive_from_seed fixtures, mirroring the spec's
// concrete scenarios 1-3.
func ringLawsFor(t *testing.T, p Params, seedA, seedB, seedC []byte) {
	modulus := recomposeLimbs(p.Modulus())
	reduceMod := func(limbs []*big.Int) *big.Int {
		v := recompose(limbs)
		return new(big.Int).Mod(v, modulus)
	}

	a := DeriveFromSeed(p, seedA)
	b := DeriveFromSeed(p, seedB)
	c := DeriveFromSeed(p, seedC)

	// a+b == b+a
	require.Zero(t, reduceMod(AddMod(p, a, b)).Cmp(reduceMod(AddMod(p, b, a))))
	// (a+b)+c == a+(b+c)
	lhs := AddMod(p, AddMod(p, a, b), c)
	rhs := AddMod(p, a, AddMod(p, b, c))
	require.Zero(t, reduceMod(lhs).Cmp(reduceMod(rhs)))

	// a*b == b*a
	require.Zero(t, reduceMod(MulMod(p, a, b)).Cmp(reduceMod(MulMod(p, b, a))))
	// (a*b)*c == a*(b*c)
	lhsM := MulMod(p, MulMod(p, a, b), c)
	rhsM := MulMod(p, a, MulMod(p, b, c))
	require.Zero(t, reduceMod(lhsM).Cmp(reduceMod(rhsM)))
	// a*(b+c) == a*b + a*c
	distrib := MulMod(p, a, AddMod(p, b, c))
	sumProducts := AddMod(p, MulMod(p, a, b), MulMod(p, a, c))
	require.Zero(t, reduceMod(distrib).Cmp(reduceMod(sumProducts)))

	// a-a == 0
	require.Zero(t, reduceMod(SubMod(p, a, a)).Sign())
	// a*1 == a
	one := decompose(big.NewInt(1), int(p.NbLimbs()))
	require.Zero(t, reduceMod(MulMod(p, a, one)).Cmp(reduceMod(a)))

	// (a+b)^2 == a^2 + 2ab + b^2
	sum := AddMod(p, a, b)
	left := MulMod(p, sum, sum)
	aa := MulMod(p, a, a)
	bb := MulMod(p, b, b)
	ab := MulMod(p, a, b)
	right := AddMod(p, AddMod(p, aa, bb), AddMod(p, ab, ab))
	require.Zero(t, reduceMod(left).Cmp(reduceMod(right)))
}

func TestRingLawsBN254Scalar(t *testing.T) {
	ringLawsFor(t, BN254Scalar{}, []byte{1, 2, 3, 4}, []byte{4, 5, 6, 7}, []byte{8, 9, 10, 11})
}

func TestRingLawsSecp256k1Base(t *testing.T) {
	ringLawsFor(t, Secp256k1Base{}, []byte{1, 2, 3, 4}, []byte{4, 5, 6, 7}, []byte{8, 9, 10, 11})
}

func TestRingLawsEd25519Base(t *testing.T) {
	ringLawsFor(t, Ed25519Base{}, []byte{1, 2, 3, 4}, []byte{4, 5, 6, 7}, []byte{8, 9, 10, 11})
}

func TestRingLawsComposite250(t *testing.T) {
	// Non-prime modulus: add/sub/mul ring laws still hold (scenario 6).
	ringLawsFor(t, Composite250{}, []byte{1, 2, 3, 4}, []byte{4, 5, 6, 7}, []byte{8, 9, 10, 11})
}

func TestDivisionAndInverse(t *testing.T) {
	sets := []Params{BN254Scalar{}, Secp256k1Base{}, Ed25519Base{}}
	for _, p := range sets {
		modulus := recomposeLimbs(p.Modulus())
		a := DeriveFromSeed(p, []byte{1, 2, 3, 4})
		b := DeriveFromSeed(p, []byte{4, 5, 6, 7})

		div := DivMod(p, a, b)
		back := MulMod(p, div, b)
		require.Zero(t, new(big.Int).Mod(recompose(back), modulus).Cmp(new(big.Int).Mod(recompose(a), modulus)))

		inv := InvMod(p, a)
		one := MulMod(p, inv, a)
		require.Zero(t, new(big.Int).Mod(recompose(one), modulus).Cmp(big.NewInt(1)))
	}
}

func TestNegate(t *testing.T) {
	p := BN254Scalar{}
	modulus := recomposeLimbs(p.Modulus())
	a := DeriveFromSeed(p, []byte{1, 2, 3, 4})
	neg := Negate(p, a)
	sum := AddMod(p, a, neg)
	require.Zero(t, new(big.Int).Mod(recompose(sum), modulus).Sign())
}

func TestMulModWithQuotientConsistency(t *testing.T) {
	p := RSA2048{}
	n := int(p.NbLimbs())
	modulus := recomposeLimbs(p.Modulus())
	a := DeriveFromSeed(p, []byte{1})
	b := DeriveFromSeed(p, []byte{2})
	quotient, remainder := MulModWithQuotient(p, a, b)
	want := new(big.Int).Mul(recompose(a), recompose(b))
	got := new(big.Int).Add(new(big.Int).Mul(recompose(quotient), modulus), recompose(remainder))
	require.Zero(t, want.Cmp(got))
	require.Less(t, len(remainder), n+1)
}

// TestConcrete2048BitScenario mirrors the spec's scenario 4 on the fixed
// 2048-bit RSA2048 modulus (a composite), with operands derived from seeds
// and MulMod checked against big.Int.
func TestConcrete2048BitScenario(t *testing.T) {
	p := RSA2048{}
	n := int(p.NbLimbs())
	a := DeriveFromSeed(p, []byte("scenario-a"))
	b := DeriveFromSeed(p, []byte("scenario-b"))
	require.Len(t, a, n)
	require.Len(t, b, n)
	c := MulMod(p, a, b)
	modulus := recomposeLimbs(p.Modulus())
	want := new(big.Int).Mod(new(big.Int).Mul(recompose(a), recompose(b)), modulus)
	require.Zero(t, want.Cmp(recompose(c)))
}
