package bignum

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Term is the unit of composition accepted by EvaluateQuadraticExpression:
// a BigInt tagged with whether it contributes positively or negatively to
// the relation being constrained.
type Term[T Params] struct {
	Value    BigInt[T]
	Negative bool
}

// Pos wraps a BigInt as a positive term.
func Pos[T Params](v BigInt[T]) Term[T] { return Term[T]{Value: v, Negative: false} }

// Neg wraps a BigInt as a negative term.
func Neg[T Params](v BigInt[T]) Term[T] { return Term[T]{Value: v, Negative: true} }

// maxProductGroups bounds NUM_PRODUCTS: AssertIsQuotientInRange allows the
// quotient's top limb six extra bits, which covers the growth from summing
// at most 2^6 = 64 product groups; more groups than this could overflow
// that allowance.
const maxProductGroups = 64

// EvaluateQuadraticExpression is the central constraint: it asserts
//
//	sum_k (sum_j lhsProducts[k][j]) * (sum_j rhsProducts[k][j]) + sum_i linearTerms[i] ≡ 0 (mod p)
//
// Every product group must have the same LHS width and the same RHS width
// (they need not match each other). Negative terms are folded through
// double_modulus so every value entering a product or sum stays
// non-negative.
//
// The zero-check walks the 2N-1 limb positions of pos - neg - q*p with
// borrow flags b_i from quotientBorrowHint: for i < 2N-2 the limb plus the
// incoming carry, minus b_{i-1}*2^126, plus b_i*2^246, is multiplied by
// 2^-120, range-checked to 126 bits and becomes the next carry; the last
// limb plus carry minus b_{2N-3}*2^126 is asserted equal to zero.
func (f *Field[T]) EvaluateQuadraticExpression(lhsProducts, rhsProducts [][]Term[T], linearTerms []Term[T]) {
	k := len(lhsProducts)
	if len(rhsProducts) != k {
		panic("bignum: evaluate_quadratic_expression: lhs/rhs product group count mismatch")
	}
	if k > maxProductGroups {
		panic("bignum: evaluate_quadratic_expression: too many product groups (max 64)")
	}
	n := int(f.params.NbLimbs())
	lhsPer, rhsPer := 0, 0
	if k > 0 {
		lhsPer, rhsPer = len(lhsProducts[0]), len(rhsProducts[0])
	}
	for _, g := range lhsProducts {
		if len(g) != lhsPer {
			panic("bignum: evaluate_quadratic_expression: uneven lhs product group width")
		}
	}
	for _, g := range rhsProducts {
		if len(g) != rhsPer {
			panic("bignum: evaluate_quadratic_expression: uneven rhs product group width")
		}
	}
	addN := len(linearTerms)

	modulus := f.Modulus()
	doubleModulus := FromBigLimbs[T](f.params.DoubleModulus())

	zero := func() []frontend.Variable {
		out := make([]frontend.Variable, n)
		for i := range out {
			out[i] = 0
		}
		return out
	}
	addInto := func(dst []frontend.Variable, src []frontend.Variable) {
		for i := range dst {
			dst[i] = f.api.Add(dst[i], src[i])
		}
	}

	// posNegSums mirrors quotientBorrowHint's posNegSums exactly: a
	// negative term contributes double_modulus to pos and its own value to
	// neg, so neither side is ever formed by subtracting limbs.
	posNegSums := func(terms []Term[T]) (pos, neg []frontend.Variable) {
		pos, neg = zero(), zero()
		for _, t := range terms {
			if t.Negative {
				addInto(pos, doubleModulus.Limbs)
				addInto(neg, t.Value.Limbs)
			} else {
				addInto(pos, t.Value.Limbs)
			}
		}
		return pos, neg
	}

	width := 2*n - 1
	posAcc := make([]frontend.Variable, width)
	negAcc := make([]frontend.Variable, width)
	for i := range posAcc {
		posAcc[i] = 0
		negAcc[i] = 0
	}

	conv := func(a, b []frontend.Variable) []frontend.Variable {
		return schoolbookConv(variableRing(f.api), a, b)
	}
	addConvInto := func(dst []frontend.Variable, a, b []frontend.Variable) {
		for i, v := range conv(a, b) {
			dst[i] = f.api.Add(dst[i], v)
		}
	}

	for g := 0; g < k; g++ {
		pL, nL := posNegSums(lhsProducts[g])
		pR, nR := posNegSums(rhsProducts[g])
		addConvInto(posAcc, pL, pR)
		addConvInto(posAcc, nL, nR)
		addConvInto(negAcc, pL, nR)
		addConvInto(negAcc, nL, pR)
	}
	pA, nA := posNegSums(linearTerms)
	for i := 0; i < n && i < width; i++ {
		posAcc[i] = f.api.Add(posAcc[i], pA[i])
		negAcc[i] = f.api.Add(negAcc[i], nA[i])
	}

	hintInputs := make([]frontend.Variable, 0, 5+2*n+k*(lhsPer+rhsPer)+addN+(k*(lhsPer+rhsPer)+addN)*n)
	hintInputs = append(hintInputs, n, k, lhsPer, rhsPer, addN)
	hintInputs = append(hintInputs, modulus.Limbs...)
	hintInputs = append(hintInputs, doubleModulus.Limbs...)
	flagVar := func(neg bool) frontend.Variable {
		if neg {
			return 1
		}
		return 0
	}
	for _, g := range lhsProducts {
		for _, t := range g {
			hintInputs = append(hintInputs, flagVar(t.Negative))
		}
	}
	for _, g := range rhsProducts {
		for _, t := range g {
			hintInputs = append(hintInputs, flagVar(t.Negative))
		}
	}
	for _, t := range linearTerms {
		hintInputs = append(hintInputs, flagVar(t.Negative))
	}
	for _, g := range lhsProducts {
		for _, t := range g {
			hintInputs = append(hintInputs, t.Value.Limbs...)
		}
	}
	for _, g := range rhsProducts {
		for _, t := range g {
			hintInputs = append(hintInputs, t.Value.Limbs...)
		}
	}
	for _, t := range linearTerms {
		hintInputs = append(hintInputs, t.Value.Limbs...)
	}

	nbOut := n + (width - 1)
	ret, err := f.api.NewHint(quotientBorrowHint, nbOut, hintInputs...)
	if err != nil {
		panic("bignum: evaluate_quadratic_expression: quotient hint failed: " + err.Error())
	}
	qLimbs := ret[:n]
	borrows := ret[n:]
	for _, b := range borrows {
		f.api.AssertIsBoolean(b)
	}

	quotient := FromLimbs[T](qLimbs)
	f.AssertIsQuotientInRange(quotient)

	qModulus := conv(qLimbs, modulus.Limbs)
	for i, v := range qModulus {
		negAcc[i] = f.api.Add(negAcc[i], v)
	}

	two126 := new(big.Int).Lsh(big.NewInt(1), 126)
	two246 := new(big.Int).Lsh(big.NewInt(1), 246)
	invTwo120 := new(big.Int).ModInverse(
		new(big.Int).Lsh(big.NewInt(1), LimbBits),
		f.api.Compiler().Field(),
	)

	var carry frontend.Variable = 0
	for i := 0; i < width-1; i++ {
		raw := f.api.Sub(posAcc[i], negAcc[i])
		raw = f.api.Add(raw, carry)
		if i > 0 {
			raw = f.api.Sub(raw, f.api.Mul(borrows[i-1], two126))
		}
		adjusted := f.api.Add(raw, f.api.Mul(borrows[i], two246))
		scaled := f.api.Mul(adjusted, invTwo120)
		f.rc.Check(scaled, 126)
		carry = scaled
	}
	final := f.api.Sub(posAcc[width-1], negAcc[width-1])
	final = f.api.Add(final, carry)
	final = f.api.Sub(final, f.api.Mul(borrows[width-2], two126))
	f.api.AssertIsEqual(final, 0)
}
