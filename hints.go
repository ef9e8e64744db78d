package bignum

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns every hint function this package registers with the
// solver, mirroring std/math/emulated/hints.go's registry.
func GetHints() []solver.Hint {
	return []solver.Hint{
		limbBorrowHint,
		quotientBorrowHint,
		addModHint,
		subModHint,
		mulModHint,
		divModHint,
	}
}

// decodeCoreOpInputs reconstructs the Params capability set a CoreOps hint
// needs plus its two operand limb vectors, from the flattened header+block
// layout PublicOps' wrapper builds: n, modulusBits, isPrime (0/1), k,
// preferredMul, then modulus/double_modulus/redc_param limbs (n each), then
// a and b limbs (n each). Hints cannot close over a live Params value (they
// are registered once, globally, by function pointer), so every field a
// CoreOps routine might read has to travel through inputs instead.
func decodeCoreOpInputs(inputs []*big.Int) (p Params, a, b []*big.Int) {
	pos := 0
	next := func() *big.Int {
		v := inputs[pos]
		pos++
		return v
	}
	n := int(next().Int64())
	modulusBits := uint32(next().Int64())
	isPrime := next().Sign() != 0
	k := uint32(next().Int64())
	preferredMul := MulKind(next().Int64())

	readFixed := func() []*big.Int {
		out := make([]*big.Int, n)
		for i := range out {
			out[i] = next()
		}
		return out
	}
	sp := &staticParams{
		nbLimbs:       uint32(n),
		modulusBits:   modulusBits,
		isPrime:       isPrime,
		k:             k,
		modulus:       readFixed(),
		doubleModulus: readFixed(),
		redcParam:     readFixed(),
		preferredMul:  preferredMul,
	}
	a = readFixed()
	b = readFixed()
	return sp, a, b
}

func addModHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	p, a, b := decodeCoreOpInputs(inputs)
	copyLimbs(outputs, AddMod(p, a, b))
	return nil
}

func subModHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	p, a, b := decodeCoreOpInputs(inputs)
	copyLimbs(outputs, SubMod(p, a, b))
	return nil
}

func mulModHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	p, a, b := decodeCoreOpInputs(inputs)
	copyLimbs(outputs, MulMod(p, a, b))
	return nil
}

// divModHint is the hint wrapper for PublicOps.Div. It assumes p is prime,
// matching DivMod's own precondition; callers invoking Div against a
// non-prime parameter set get a meaningless witness and an unsatisfiable
// circuit, not a panic.
func divModHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	p, a, b := decodeCoreOpInputs(inputs)
	copyLimbs(outputs, DivMod(p, a, b))
	return nil
}

func copyLimbs(outputs []*big.Int, src []*big.Int) {
	for i, v := range src {
		outputs[i].Set(v)
	}
}

// limbBorrowHint resolves the borrow-out bit of a single limb subtraction
// a_i-(b_i+borrowIn), given only the raw native-field result. A genuine
// non-negative raw value is bounded by roughly 2^121, far below half the
// native field; a wrapped negative value lands within 2^121 of the field's
// top, i.e. above half. That gap is what makes the disambiguation sound.
func limbBorrowHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 1 {
		return errors.New("limbBorrowHint: expected one input and one output")
	}
	half := new(big.Int).Rsh(field, 1)
	if inputs[0].Cmp(half) > 0 {
		outputs[0].SetInt64(1)
	} else {
		outputs[0].SetInt64(0)
	}
	return nil
}

// quotientBorrowHint is the witness engine behind evaluate_quadratic_expression.
// It reconstructs, from flattened product-group and linear-term data, the
// same effective-term limb sums and convolutions the constrained code
// builds, derives the exact integer quotient against the modulus, and
// simulates the borrow-flag walk the constrained code will replay limb by
// limb. One call returns the quotient limbs followed by every borrow flag,
// batching what would otherwise be O(N) separate hint round-trips.
//
// Input layout: nbLimbs, numProducts, lhsPerProduct, rhsPerProduct,
// numLinear, then modulus limbs (nbLimbs), double_modulus limbs (nbLimbs),
// then the negative flags (0/1) for every lhs term, every rhs term and
// every linear term in that order, then the value limbs for the same three
// groups in the same order (each term contributing nbLimbs values).
//
// Output layout: nbLimbs quotient limbs, then 2*nbLimbs-2 borrow flags.
func quotientBorrowHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	pos := 0
	next := func() *big.Int {
		v := inputs[pos]
		pos++
		return v
	}
	n := int(next().Int64())
	k := int(next().Int64())
	lhsPer := int(next().Int64())
	rhsPer := int(next().Int64())
	addN := int(next().Int64())

	readFixed := func(count int) []*big.Int {
		out := make([]*big.Int, count)
		for i := range out {
			out[i] = next()
		}
		return out
	}
	modulusLimbs := readFixed(n)
	doubleModulusLimbs := readFixed(n)

	readFlags := func(count int) []bool {
		out := make([]bool, count)
		for i := range out {
			out[i] = next().Sign() != 0
		}
		return out
	}
	lhsFlags := readFlags(k * lhsPer)
	rhsFlags := readFlags(k * rhsPer)
	addFlags := readFlags(addN)

	readTerms := func(count int) [][]*big.Int {
		out := make([][]*big.Int, count)
		for i := range out {
			out[i] = readFixed(n)
		}
		return out
	}
	lhsValues := readTerms(k * lhsPer)
	rhsValues := readTerms(k * rhsPer)
	addValues := readTerms(addN)

	if len(outputs) != n+2*n-2 {
		return errors.New("quotientBorrowHint: unexpected output count")
	}

	modulus := recomposeLimbs(modulusLimbs)

	zeroLimbs := func() []*big.Int {
		out := make([]*big.Int, n)
		for i := range out {
			out[i] = new(big.Int)
		}
		return out
	}

	// posnegAccSums builds the positive-sum/negative-sum pair for a group of
	// terms: a negative term adds double_modulus to the positive side and
	// its value to the negative side, so both sides stay non-negative
	// WideVec sums with no limb-wise subtraction ever performed here.
	posnegAccSums := func(values [][]*big.Int, flags []bool, start, count int) (pos, neg []*big.Int) {
		pos, neg = zeroLimbs(), zeroLimbs()
		for j := 0; j < count; j++ {
			v := values[start+j]
			if flags[start+j] {
				for i := 0; i < n; i++ {
					pos[i].Add(pos[i], doubleModulusLimbs[i])
					neg[i].Add(neg[i], v[i])
				}
			} else {
				for i := 0; i < n; i++ {
					pos[i].Add(pos[i], v[i])
				}
			}
		}
		return pos, neg
	}

	width := 2*n - 1
	P := make([]*big.Int, width)
	negAcc := make([]*big.Int, width)
	for i := range P {
		P[i] = new(big.Int)
		negAcc[i] = new(big.Int)
	}

	add := func(dst []*big.Int, a, b []*big.Int) {
		for i, v := range SchoolbookBig(a, b) {
			dst[i].Add(dst[i], v)
		}
	}
	for g := 0; g < k; g++ {
		pL, nL := posnegAccSums(lhsValues, lhsFlags, g*lhsPer, lhsPer)
		pR, nR := posnegAccSums(rhsValues, rhsFlags, g*rhsPer, rhsPer)
		add(P, pL, pR)
		add(P, nL, nR)
		add(negAcc, pL, nR)
		add(negAcc, nL, pR)
	}
	pA, nA := posnegAccSums(addValues, addFlags, 0, addN)
	for i := 0; i < n && i < width; i++ {
		P[i].Add(P[i], pA[i])
		negAcc[i].Add(negAcc[i], nA[i])
	}

	totalEff := new(big.Int).Sub(recompose(P), recompose(negAcc))
	q, r := new(big.Int).QuoRem(totalEff, modulus, new(big.Int))
	if r.Sign() != 0 {
		return errors.New("quotientBorrowHint: claimed relation is not a multiple of the modulus")
	}

	qLimbs := decomposeTopWide(q, n)
	add(negAcc, qLimbs, modulusLimbs)

	two120 := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	two126 := new(big.Int).Lsh(big.NewInt(1), 126)
	two246 := new(big.Int).Lsh(big.NewInt(1), 246)

	borrows := make([]int64, width-1)
	carry := new(big.Int)
	for i := 0; i < width-1; i++ {
		raw := new(big.Int).Sub(P[i], negAcc[i])
		raw.Add(raw, carry)
		if i > 0 && borrows[i-1] == 1 {
			raw.Sub(raw, two126)
		}
		if raw.Sign() < 0 {
			borrows[i] = 1
		}
		adjusted := new(big.Int).Set(raw)
		if borrows[i] == 1 {
			adjusted.Add(adjusted, two246)
		}
		nextCarry, rem := new(big.Int).QuoRem(adjusted, two120, new(big.Int))
		if rem.Sign() != 0 {
			return errors.New("quotientBorrowHint: internal invariant violated (non-exact carry)")
		}
		carry = nextCarry
	}
	final := new(big.Int).Sub(P[width-1], negAcc[width-1])
	final.Add(final, carry)
	if borrows[width-2] == 1 {
		final.Sub(final, two126)
	}
	if final.Sign() != 0 {
		return errors.New("quotientBorrowHint: claimed relation does not hold")
	}

	for i := 0; i < n; i++ {
		outputs[i].Set(qLimbs[i])
	}
	for i, b := range borrows {
		outputs[n+i].SetInt64(b)
	}
	return nil
}
