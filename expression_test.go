package bignum

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

// quadraticCircuit directly exercises EvaluateQuadraticExpression with two
// product groups and a linear term, constraining
//
//	A*B + C*D - E ≡ 0 (mod p)
//
// in a single call, the way PublicOps composes multiple operations into one
// reduction (§4.7's design rationale).
type quadraticCircuit[T Params] struct {
	A, B, C, D, E BigInt[T]
}

func (c *quadraticCircuit[T]) Define(api frontend.API) error {
	f, err := NewField[T](api)
	if err != nil {
		return err
	}
	f.EvaluateQuadraticExpression(
		[][]Term[T]{{Pos(c.A)}, {Pos(c.C)}},
		[][]Term[T]{{Pos(c.B)}, {Pos(c.D)}},
		[]Term[T]{Neg(c.E)},
	)
	return nil
}

func TestQuadraticExpressionMultiGroup(t *testing.T) {
	assert := test.NewAssert(t)
	p := BN254Scalar{}
	modulus := recomposeLimbs(p.Modulus())

	a := big.NewInt(17)
	b := big.NewInt(19)
	c := big.NewInt(23)
	d := big.NewInt(29)
	e := new(big.Int).Mod(new(big.Int).Add(new(big.Int).Mul(a, b), new(big.Int).Mul(c, d)), modulus)

	assignment := &quadraticCircuit[BN254Scalar]{
		A: ValueOf[BN254Scalar](a),
		B: ValueOf[BN254Scalar](b),
		C: ValueOf[BN254Scalar](c),
		D: ValueOf[BN254Scalar](d),
		E: ValueOf[BN254Scalar](e),
	}
	assert.CheckCircuit(&quadraticCircuit[BN254Scalar]{}, test.WithValidAssignment(assignment), test.WithCurves(ecc.BN254))
}

// sumOfSquaresCircuit checks (A+B)^2 ≡ A^2 + 2AB + B^2 (the spec's ring-law
// testable property) through three direct EvaluateQuadraticExpression calls
// (the sum, its square, and the expanded form), rather than through
// PublicOps.Add/Mul composition.
type sumOfSquaresCircuit[T Params] struct {
	A, B BigInt[T]
}

func (c *sumOfSquaresCircuit[T]) Define(api frontend.API) error {
	f, err := NewField[T](api)
	if err != nil {
		return err
	}
	left := f.coreOpHint(addModHint, c.A, c.B)
	f.EvaluateQuadraticExpression(nil, nil, []Term[T]{Pos(c.A), Pos(c.B), Neg(left)})

	leftSq := f.coreOpHint(mulModHint, left, left)
	f.EvaluateQuadraticExpression([][]Term[T]{{Pos(left)}}, [][]Term[T]{{Pos(left)}}, []Term[T]{Neg(leftSq)})

	f.EvaluateQuadraticExpression(
		[][]Term[T]{{Pos(c.A)}, {Pos(c.B)}, {Pos(c.A)}, {Pos(c.A)}},
		[][]Term[T]{{Pos(c.A)}, {Pos(c.B)}, {Pos(c.B)}, {Pos(c.B)}},
		[]Term[T]{Neg(leftSq)},
	)
	return nil
}

func TestQuadraticExpressionSumOfSquares(t *testing.T) {
	assert := test.NewAssert(t)
	p := BN254Scalar{}
	a := DeriveFromSeed(p, []byte{1, 2, 3, 4})
	b := DeriveFromSeed(p, []byte{4, 5, 6, 7})

	assignment := &sumOfSquaresCircuit[BN254Scalar]{
		A: FromBigLimbs[BN254Scalar](a),
		B: FromBigLimbs[BN254Scalar](b),
	}
	assert.CheckCircuit(&sumOfSquaresCircuit[BN254Scalar]{}, test.WithValidAssignment(assignment), test.WithCurves(ecc.BN254))
}
