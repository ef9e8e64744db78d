package bignum

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/std/rangecheck"
	"github.com/rs/zerolog"
)

// Field holds the configuration needed to perform in-circuit modular
// arithmetic under the modulus described by the type parameter T. It is
// the entry point for every constrained operator in this package.
type Field[T Params] struct {
	api frontend.API
	rc  frontend.Rangechecker
	log zerolog.Logger

	params T
}

// NewField validates T's parameter set and returns a Field ready to build
// constraints with. If T.IsPrime() is set, the modulus is checked to
// actually be prime (division and inversion would otherwise be unsound).
func NewField[T Params](api frontend.API) (*Field[T], error) {
	var p T
	modulus := recomposeLimbs(p.Modulus())

	if p.IsPrime() && !modulus.ProbablyPrime(20) {
		return nil, fmt.Errorf("bignum: parameter set claims IsPrime but modulus is not prime")
	}
	if p.NbLimbs() < minLimbs(p.ModulusBits()) {
		return nil, fmt.Errorf("bignum: NbLimbs=%d too small for ModulusBits=%d (headroom invariant violated)", p.NbLimbs(), p.ModulusBits())
	}
	if p.NbLimbs() > 64 {
		return nil, fmt.Errorf("bignum: NbLimbs=%d exceeds the 64-limb bound", p.NbLimbs())
	}

	f := &Field[T]{
		api:    api,
		rc:     rangecheck.New(api),
		log:    logger.Logger(),
		params: p,
	}
	f.log.Debug().
		Uint32("nbLimbs", p.NbLimbs()).
		Uint32("modulusBits", p.ModulusBits()).
		Bool("isPrime", p.IsPrime()).
		Msg("bignum: field initialized")
	return f, nil
}

// Params returns the field's parameter set.
func (f *Field[T]) Params() T { return f.params }

// Zero returns the constant 0.
func (f *Field[T]) Zero() BigInt[T] {
	return NewBigInt[T]()
}

// One returns the constant 1.
func (f *Field[T]) One() BigInt[T] {
	var p T
	limbs := make([]frontend.Variable, p.NbLimbs())
	limbs[0] = 1
	for i := 1; i < len(limbs); i++ {
		limbs[i] = 0
	}
	return BigInt[T]{Limbs: limbs}
}

// Modulus returns the modulus as a constant BigInt.
func (f *Field[T]) Modulus() BigInt[T] {
	return FromBigLimbs[T](f.params.Modulus())
}

// modulusMinusOne returns p-1 as a constant BigInt, used by AssertIsInField
// to turn "x < p" into a borrow-detectable range check.
func (f *Field[T]) modulusMinusOne() BigInt[T] {
	m := recomposeLimbs(f.params.Modulus())
	m.Sub(m, big.NewInt(1))
	return FromBigLimbs[T](decompose(m, int(f.params.NbLimbs())))
}

// enforceLimbWidths range-checks every limb of b, using bound for the top
// limb and LimbBits for every other limb.
func (f *Field[T]) enforceLimbWidths(b BigInt[T], topBound uint32) {
	for i, l := range b.Limbs {
		if i == len(b.Limbs)-1 {
			f.rc.Check(l, int(topBound))
		} else {
			f.rc.Check(l, LimbBits)
		}
	}
}

// AssertIsInRange implements validate_in_range: every limb below 2^120 and
// the top limb below 2^TopLimbBits(p).
func (f *Field[T]) AssertIsInRange(b BigInt[T]) {
	f.enforceLimbWidths(b, TopLimbBits(f.params))
}

// AssertIsQuotientInRange implements validate_quotient_in_range: as
// AssertIsInRange, but the top limb is allowed six extra bits, to
// accommodate the quotient produced by summing up to 64 product terms in
// EvaluateQuadraticExpression.
func (f *Field[T]) AssertIsQuotientInRange(b BigInt[T]) {
	f.enforceLimbWidths(b, TopLimbBits(f.params)+6)
}

// AssertIsInField implements validate_in_field: computes (p-1)-x with
// borrow propagation via EvaluateQuadraticExpression-free limb arithmetic
// and asserts the result is range-valid. Subtracting from p-1 rather than
// p matters: x == p would otherwise leave an all-zero diff (no borrow at
// any limb), which trivially passes AssertIsInRange and would wrongly
// accept x == p as field-valid. Together with AssertIsInRange, this proves
// 0 <= x <= p-1, i.e. 0 <= x < p.
func (f *Field[T]) AssertIsInField(x BigInt[T]) {
	diff := f.subLimbsNoModulus(f.modulusMinusOne(), x)
	f.AssertIsInRange(diff)
}

// subLimbsNoModulus computes a-b limb-wise with a single borrow chain
// confined to native-field arithmetic (not the full borrow-flag scheme,
// which is reserved for EvaluateQuadraticExpression): used by
// AssertIsInField for (p-1) - x, where a final borrow-out means b > a.
func (f *Field[T]) subLimbsNoModulus(a, b BigInt[T]) BigInt[T] {
	n := len(a.Limbs)
	out := make([]frontend.Variable, n)
	shift := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	var borrowIn frontend.Variable = 0
	for i := 0; i < n; i++ {
		// raw = a_i - b_i - borrowIn, always recoverable as a non-negative
		// value below 2*2^120 since a (p-1) limb-dominates a valid
		// b once borrow is accounted for; a hint resolves the actual
		// borrow-out bit because the sign of raw is not native-field
		// visible.
		raw := f.api.Sub(a.Limbs[i], f.api.Add(b.Limbs[i], borrowIn))
		borrowOut, err := f.api.NewHint(limbBorrowHint, 1, raw)
		if err != nil {
			panic(fmt.Sprintf("bignum: limb borrow hint: %v", err))
		}
		f.api.AssertIsBoolean(borrowOut[0])
		adjusted := f.api.Add(raw, f.api.Mul(borrowOut[0], shift))
		out[i] = adjusted
		borrowIn = borrowOut[0]
	}
	// A final borrow-out would mean b > a as an integer; asserting it is
	// zero is exactly the "x < modulus" content of validate_in_field.
	f.api.AssertIsEqual(borrowIn, 0)
	return BigInt[T]{Limbs: out}
}
