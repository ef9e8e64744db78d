package bignum

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Add constrains result = a+b (mod p), deriving the witness from CoreOps'
// addmod and constraining it through the linear-only form
// [a+, b+, result-] ≡ 0.
func (f *Field[T]) Add(a, b BigInt[T]) BigInt[T] {
	result := f.coreOpHint(addModHint, a, b)
	f.EvaluateQuadraticExpression(nil, nil, []Term[T]{Pos(a), Pos(b), Neg(result)})
	return result
}

// Sub constrains result = a-b (mod p): [a-, b+, result+] ≡ 0.
func (f *Field[T]) Sub(a, b BigInt[T]) BigInt[T] {
	result := f.coreOpHint(subModHint, a, b)
	f.EvaluateQuadraticExpression(nil, nil, []Term[T]{Neg(a), Pos(b), Pos(result)})
	return result
}

// Mul constrains result = a*b (mod p) with a single product group
// [a+]*[b+] and the linear term [result-].
func (f *Field[T]) Mul(a, b BigInt[T]) BigInt[T] {
	result := f.coreOpHint(mulModHint, a, b)
	f.EvaluateQuadraticExpression(
		[][]Term[T]{{Pos(a)}},
		[][]Term[T]{{Pos(b)}},
		[]Term[T]{Neg(result)},
	)
	return result
}

// Div constrains result = a/b (mod p) by proving result*b = a: product
// group [result+]*[b+] plus the linear term [a-]. b must be invertible;
// the witness side (DivMod) assumes p prime.
func (f *Field[T]) Div(a, b BigInt[T]) BigInt[T] {
	result := f.coreOpHint(divModHint, a, b)
	f.EvaluateQuadraticExpression(
		[][]Term[T]{{Pos(result)}},
		[][]Term[T]{{Pos(b)}},
		[]Term[T]{Neg(a)},
	)
	return result
}

// coreOpHint calls one of the registered CoreOps hints (addModHint,
// subModHint, mulModHint, divModHint), feeding it the parameter-set header
// those hints expect (see decodeCoreOpInputs) followed by a and b's limbs,
// and returns the single n-limb output as a BigInt.
func (f *Field[T]) coreOpHint(hint func(field *big.Int, inputs []*big.Int, outputs []*big.Int) error, a, b BigInt[T]) BigInt[T] {
	n := int(f.params.NbLimbs())
	preferredMul := big.NewInt(int64(f.params.PreferredMul()))
	isPrime := big.NewInt(0)
	if f.params.IsPrime() {
		isPrime.SetInt64(1)
	}
	inputs := make([]frontend.Variable, 0, 5+3*n+2*n)
	inputs = append(inputs, n, f.params.ModulusBits(), isPrime, f.params.K(), preferredMul)
	inputs = append(inputs, limbsToVars(f.params.Modulus())...)
	inputs = append(inputs, limbsToVars(f.params.DoubleModulus())...)
	inputs = append(inputs, limbsToVars(f.params.RedcParam())...)
	inputs = append(inputs, a.Limbs...)
	inputs = append(inputs, b.Limbs...)

	out, err := f.api.NewHint(hint, n, inputs...)
	if err != nil {
		panic("bignum: hint evaluation failed: " + err.Error())
	}
	return FromLimbs[T](out)
}

func limbsToVars(limbs []*big.Int) []frontend.Variable {
	out := make([]frontend.Variable, len(limbs))
	for i, l := range limbs {
		out[i] = new(big.Int).Set(l)
	}
	return out
}

// AssertIsEqual constrains a ≡ b (mod p) via the linear-only form
// [a+, b-] ≡ 0.
func (f *Field[T]) AssertIsEqual(a, b BigInt[T]) {
	f.EvaluateQuadraticExpression(nil, nil, []Term[T]{Pos(a), Neg(b)})
}

// AssertIsNotEqual implements assert_is_not_equal: treating the limb
// sequences of a, b and the modulus as evaluations of their radix-2^120
// polynomials directly over the native field (not reduced mod p), assert
// (L-R)*(L-R+M)*(L-R-M) != 0. Native-field equality of any of the three
// factors to zero would mean a and b collide under one of the three
// representations an honest-but-bounded prover could produce; ruling out
// all three is what makes the check sound without a full mod-p reduction.
func (f *Field[T]) AssertIsNotEqual(a, b BigInt[T]) {
	l := f.evalAtRadix(a)
	r := f.evalAtRadix(b)
	m := f.evalAtRadix(f.Modulus())

	diff := f.api.Sub(l, r)
	t1 := diff
	t2 := f.api.Add(diff, m)
	t3 := f.api.Sub(diff, m)
	product := f.api.Mul(t1, t2)
	product = f.api.Mul(product, t3)
	f.api.AssertIsDifferent(product, 0)
}

// evalAtRadix folds a BigInt's limbs into a single native-field element by
// Horner's rule on 2^LimbBits, without any modular reduction. This is
// exactly the "L(2^120)" polynomial evaluation assert_is_not_equal relies
// on, distinct from the modular value the limbs otherwise represent.
func (f *Field[T]) evalAtRadix(b BigInt[T]) frontend.Variable {
	radix := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	var acc frontend.Variable = 0
	for i := len(b.Limbs) - 1; i >= 0; i-- {
		acc = f.api.Add(b.Limbs[i], f.api.Mul(acc, radix))
	}
	return acc
}

// ConditionalSelect returns a if pred == 0 and b if pred == 1, limbwise:
// result_i = a_i + pred*(b_i - a_i).
func (f *Field[T]) ConditionalSelect(pred frontend.Variable, a, b BigInt[T]) BigInt[T] {
	f.api.AssertIsBoolean(pred)
	n := len(a.Limbs)
	out := make([]frontend.Variable, n)
	for i := 0; i < n; i++ {
		out[i] = f.api.Add(a.Limbs[i], f.api.Mul(pred, f.api.Sub(b.Limbs[i], a.Limbs[i])))
	}
	return BigInt[T]{Limbs: out}
}

// FromBytesBE is the constrained counterpart of the package-level
// FromBytesBE: it packs a big-endian byte slice (one frontend.Variable per
// byte) into limbs of LimbBits bits, range-checking every byte to 8 bits
// and then the assembled BigInt with AssertIsInRange.
func (f *Field[T]) FromBytesBE(data []frontend.Variable) BigInt[T] {
	n := int(f.params.NbLimbs())
	bytesPerLimb := LimbBits / 8
	needed := n * bytesPerLimb
	if len(data) > needed {
		panic("bignum: FromBytesBE: more bytes than the parameter set's limb capacity can hold")
	}
	padded := make([]frontend.Variable, needed)
	offset := needed - len(data)
	for i := 0; i < offset; i++ {
		padded[i] = 0
	}
	copy(padded[offset:], data)

	for _, byteVar := range data {
		f.rc.Check(byteVar, 8)
	}

	limbs := make([]frontend.Variable, n)
	base := frontend.Variable(1 << 8)
	for limb := 0; limb < n; limb++ {
		start := needed - (limb+1)*bytesPerLimb
		var acc frontend.Variable = 0
		for j := 0; j < bytesPerLimb; j++ {
			acc = f.api.Add(f.api.Mul(acc, base), padded[start+j])
		}
		limbs[limb] = acc
	}
	result := BigInt[T]{Limbs: limbs}
	f.AssertIsInRange(result)
	return result
}
