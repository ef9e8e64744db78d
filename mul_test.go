package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randLimbs(r *rand.Rand, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = randBig(r, LimbBits)
	}
	return out
}

// TestMultiplicationEquivalence checks schoolbook and Karatsuba agree across
// the spec's named sizes (13, 17, 18, 26, 34), collapsed here into the
// generic recursive routine (see the mul.go entry of DESIGN.md).
func TestMultiplicationEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{2, 3, 13, 17, 18, 26, 34} {
		a := randLimbs(r, n)
		b := randLimbs(r, n)
		sb := SchoolbookBig(a, b)
		ka := KaratsubaBig(a, b)
		require.Equal(t, len(sb), len(ka))
		for i := range sb {
			require.Zero(t, sb[i].Cmp(ka[i]), "n=%d i=%d", n, i)
		}

		// Karatsuba is commutative: karatsuba(b,a) == karatsuba(a,b).
		kaSwap := KaratsubaBig(b, a)
		for i := range ka {
			require.Zero(t, ka[i].Cmp(kaSwap[i]))
		}

		// Both encode the same integer product once recomposed at radix 2^120.
		wantVal := new(big.Int).Mul(recompose(a), recompose(b))
		require.Zero(t, wantVal.Cmp(recompose(sb)))
	}
}

func TestMultiplyBigDispatch(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := randLimbs(r, 18)
	b := randLimbs(r, 18)
	rsaModulus := recomposeLimbs(RSA2048{}.Modulus())
	sb := MultiplyBig(NewDynamicParams(rsaModulus, false, Schoolbook), a, b)
	ka := MultiplyBig(RSA2048{}, a, b)
	for i := range sb {
		require.Zero(t, sb[i].Cmp(ka[i]))
	}
}

// TestMultiplyBigPerParamSet is SPEC_FULL.md §11's addition to the
// multiplication-equivalence property: every built-in parameter set's own
// PreferredMul dispatch must agree with plain schoolbook, not only the
// fixed Karatsuba-18 case spec.md's scenario 5 names.
func TestMultiplyBigPerParamSet(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	sets := []Params{BN254Scalar{}, Secp256k1Base{}, Ed25519Base{}, RSA2048{}, Composite250{}}
	for _, p := range sets {
		n := int(p.NbLimbs())
		a := randLimbs(r, n)
		b := randLimbs(r, n)
		dispatched := MultiplyBig(p, a, b)
		sb := SchoolbookBig(a, b)
		for i := range sb {
			require.Zero(t, sb[i].Cmp(dispatched[i]), "%T limb %d", p, i)
		}
	}
}
