package bignum

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type inFieldCircuit[T Params] struct {
	X BigInt[T]
}

func (c *inFieldCircuit[T]) Define(api frontend.API) error {
	f, err := NewField[T](api)
	if err != nil {
		return err
	}
	f.AssertIsInRange(c.X)
	f.AssertIsInField(c.X)
	return nil
}

func TestAssertIsInFieldCircuit(t *testing.T) {
	assert := test.NewAssert(t)
	p := BN254Scalar{}
	modulus := recomposeLimbs(p.Modulus())

	valid := &inFieldCircuit[BN254Scalar]{X: ValueOf[BN254Scalar](big.NewInt(42))}
	assert.CheckCircuit(&inFieldCircuit[BN254Scalar]{}, test.WithValidAssignment(valid), test.WithCurves(ecc.BN254))

	// x = p-1 is field-valid; x = p is not.
	pMinusOne := new(big.Int).Sub(modulus, big.NewInt(1))
	edge := &inFieldCircuit[BN254Scalar]{X: ValueOf[BN254Scalar](pMinusOne)}
	assert.CheckCircuit(&inFieldCircuit[BN254Scalar]{}, test.WithValidAssignment(edge), test.WithCurves(ecc.BN254))

	atModulus := &inFieldCircuit[BN254Scalar]{X: FromBigLimbs[BN254Scalar](decompose(modulus, int(p.NbLimbs())))}
	assert.CheckCircuit(&inFieldCircuit[BN254Scalar]{}, test.WithInvalidAssignment(atModulus), test.WithCurves(ecc.BN254))
}

type rangeOnlyCircuit[T Params] struct {
	X BigInt[T]
}

func (c *rangeOnlyCircuit[T]) Define(api frontend.API) error {
	f, err := NewField[T](api)
	if err != nil {
		return err
	}
	f.AssertIsInRange(c.X)
	return nil
}

func TestAssertIsInRangeCircuit(t *testing.T) {
	assert := test.NewAssert(t)
	p := BN254Scalar{}
	n := int(p.NbLimbs())

	// All limbs at the maximal range-valid magnitude (2^120-1 for the
	// non-top limbs, 2^TopLimbBits-1 for the top one) must still pass: a
	// range-valid BigInt need not be field-valid.
	topBound := new(big.Int).Lsh(big.NewInt(1), uint(TopLimbBits(p)))
	topBound.Sub(topBound, big.NewInt(1))
	limbs := make([]*big.Int, n)
	for i := 0; i < n-1; i++ {
		limbs[i] = new(big.Int).Set(mask120)
	}
	limbs[n-1] = topBound

	assignment := &rangeOnlyCircuit[BN254Scalar]{X: FromBigLimbs[BN254Scalar](limbs)}
	assert.CheckCircuit(&rangeOnlyCircuit[BN254Scalar]{}, test.WithValidAssignment(assignment), test.WithCurves(ecc.BN254))
}

type zeroOneModulusCircuit[T Params] struct {
	Modulus BigInt[T]
}

func (c *zeroOneModulusCircuit[T]) Define(api frontend.API) error {
	f, err := NewField[T](api)
	if err != nil {
		return err
	}
	f.AssertIsEqual(f.Modulus(), c.Modulus)
	sum := f.Add(f.Zero(), f.One())
	f.AssertIsEqual(sum, f.One())
	return nil
}

func TestFieldZeroOneModulus(t *testing.T) {
	assert := test.NewAssert(t)
	p := BN254Scalar{}
	modulus := recomposeLimbs(p.Modulus())

	assignment := &zeroOneModulusCircuit[BN254Scalar]{Modulus: FromBigLimbs[BN254Scalar](decompose(modulus, int(p.NbLimbs())))}
	assert.CheckCircuit(&zeroOneModulusCircuit[BN254Scalar]{}, test.WithValidAssignment(assignment), test.WithCurves(ecc.BN254))
}
