package bignum

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
)

// LimbBits is the fixed radix width used by every BigInt limb.
const LimbBits = 120

// MulKind selects which convolution routine a Params implementation
// advertises as its preferred multiplication routine for the simple
// operand-times-operand path: MultiplyBig (and so CoreOps.MulMod and the
// witness hint behind Field.Mul) and MultiplyVar. It has no effect on
// correctness. The constraints EvaluateQuadraticExpression emits always use
// schoolbook convolution, whatever MulKind is set.
type MulKind uint8

const (
	Schoolbook MulKind = iota
	Karatsuba13
	Karatsuba17
	Karatsuba18
	Karatsuba26
	Karatsuba34
)

// Params is the compile-time capability set every modulus must supply. It
// bundles the modulus, twice the modulus (used to keep subtraction-like
// terms non-negative during witness computation), the precomputed Barrett
// parameter, and the bit-length bookkeeping needed to size range checks.
type Params interface {
	NbLimbs() uint32
	ModulusBits() uint32
	IsPrime() bool
	K() uint32
	Modulus() []*big.Int
	DoubleModulus() []*big.Int
	RedcParam() []*big.Int
	PreferredMul() MulKind
}

// TopLimbBits returns the bit width the most significant limb of a
// range-valid BigInt under p must be bounded by. When modulus_bits is an
// exact multiple of LimbBits the naive formula modulus_bits-LimbBits*(N-1)
// degenerates to zero; LimbBits is substituted in that case.
func TopLimbBits(p Params) uint32 {
	n := p.NbLimbs()
	bits := p.ModulusBits()
	rem := bits - LimbBits*(n-1)
	if rem == 0 {
		return LimbBits
	}
	return rem
}

// minLimbs returns the minimum N satisfying the spec's one-bit-of-headroom
// invariant: N >= ceil((modulus_bits+1)/LimbBits).
func minLimbs(modulusBits uint32) uint32 {
	return (modulusBits + 1 + LimbBits - 1) / LimbBits
}

func decomposeFixed(v *big.Int, nbLimbs uint32) []*big.Int {
	limbs := make([]*big.Int, nbLimbs)
	tmp := new(big.Int).Set(v)
	mask := new(big.Int).Lsh(big.NewInt(1), LimbBits)
	mask.Sub(mask, big.NewInt(1))
	for i := uint32(0); i < nbLimbs; i++ {
		limb := new(big.Int).And(tmp, mask)
		limbs[i] = limb
		tmp.Rsh(tmp, LimbBits)
	}
	if tmp.Sign() != 0 {
		panic(fmt.Sprintf("value does not fit in %d limbs of %d bits", nbLimbs, LimbBits))
	}
	return limbs
}

func recomposeLimbs(limbs []*big.Int) *big.Int {
	res := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		res.Lsh(res, LimbBits)
		res.Add(res, limbs[i])
	}
	return res
}

// staticParams is the concrete storage behind every built-in Params value
// and the value NewDynamicParams returns. It is deliberately not used as a
// generic type parameter's zero value: its fields must be populated by a
// constructor, unlike the zero-size struct types below which compute their
// constants once in package init().
type staticParams struct {
	nbLimbs       uint32
	modulusBits   uint32
	isPrime       bool
	k             uint32
	modulus       []*big.Int
	doubleModulus []*big.Int
	redcParam     []*big.Int
	preferredMul  MulKind
}

func (p *staticParams) NbLimbs() uint32         { return p.nbLimbs }
func (p *staticParams) ModulusBits() uint32      { return p.modulusBits }
func (p *staticParams) IsPrime() bool            { return p.isPrime }
func (p *staticParams) K() uint32                { return p.k }
func (p *staticParams) Modulus() []*big.Int      { return p.modulus }
func (p *staticParams) DoubleModulus() []*big.Int { return p.doubleModulus }
func (p *staticParams) RedcParam() []*big.Int    { return p.redcParam }
func (p *staticParams) PreferredMul() MulKind    { return p.preferredMul }

func buildStatic(modulus *big.Int, isPrime bool, nbLimbs uint32, mul MulKind, kOverride uint32) *staticParams {
	modulusBits := uint32(modulus.BitLen())
	if nbLimbs == 0 {
		nbLimbs = minLimbs(modulusBits)
	}
	if nbLimbs < minLimbs(modulusBits) {
		panic("nbLimbs too small for modulus: violates headroom invariant")
	}
	if nbLimbs > 64 {
		panic("nbLimbs exceeds the 64-limb bound")
	}
	k := kOverride
	if k == 0 {
		k = modulusBits
	}
	redc := new(big.Int).Lsh(big.NewInt(1), uint(2*k))
	redc.Quo(redc, modulus)
	doubleModulus := new(big.Int).Lsh(modulus, 1)
	return &staticParams{
		nbLimbs:       nbLimbs,
		modulusBits:   modulusBits,
		isPrime:       isPrime,
		k:             k,
		modulus:       decomposeFixed(modulus, nbLimbs),
		doubleModulus: decomposeFixed(doubleModulus, nbLimbs),
		redcParam:     decomposeFixed(redc, nbLimbs),
		preferredMul:  mul,
	}
}

// NewDynamicParams derives a Params value from an arbitrary modulus at
// circuit-definition time, computing double_modulus, redc_param and k the
// same way every built-in parameter set does. Unlike the zero-size struct
// types below, the returned value carries its constants as fields rather
// than package-level init() state, so it cannot be used as the zero value
// of a generic BigInt[T]/Field[T] instantiation; it is intended for the
// witness-side (non-generic) helpers in coreops.go, reduce.go and mul.go,
// and for building ad hoc test fixtures.
func NewDynamicParams(modulus *big.Int, isPrime bool, mul MulKind) Params {
	return buildStatic(modulus, isPrime, 0, mul, 0)
}

// --- Built-in parameter sets, mirroring the zero-size struct pattern used
// throughout std/math/emulated/params.go: constants are computed once in
// init() and the type itself carries no state. ---

var (
	bn254ScalarMod   *big.Int
	secp256k1BaseMod *big.Int
	ed25519BaseMod   *big.Int
	rsa2048Mod       *big.Int
	composite250Mod  *big.Int

	bn254ScalarParams   *staticParams
	secp256k1BaseParams *staticParams
	ed25519BaseParams   *staticParams
	rsa2048Params       *staticParams
	composite250Params  *staticParams
)

func init() {
	bn254ScalarMod = ecc.BN254.ScalarField()
	secp256k1BaseMod, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	ed25519BaseMod = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	rsa2048Mod = new(big.Int).Lsh(big.NewInt(1), 2048)
	rsa2048Mod.Sub(rsa2048Mod, big.NewInt(159)) // a representative 2048-bit odd composite fixture

	// composite250Mod: product of two distinct ~125-bit primes, deliberately
	// non-prime, used to exercise the paths where inversion/division must
	// not be relied upon.
	p1 := nextPrime(new(big.Int).Lsh(big.NewInt(1), 125))
	p2 := nextPrime(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 124), big.NewInt(1<<20)))
	composite250Mod = new(big.Int).Mul(p1, p2)

	bn254ScalarParams = buildStatic(bn254ScalarMod, true, 3, Schoolbook, 0)
	secp256k1BaseParams = buildStatic(secp256k1BaseMod, true, 3, Schoolbook, 0)
	ed25519BaseParams = buildStatic(ed25519BaseMod, true, 3, Schoolbook, 0)
	rsa2048Params = buildStatic(rsa2048Mod, false, 18, Karatsuba18, 0)
	composite250Params = buildStatic(composite250Mod, false, 3, Schoolbook, 0)
}

func nextPrime(from *big.Int) *big.Int {
	v := new(big.Int).Set(from)
	if v.Bit(0) == 0 {
		v.Add(v, big.NewInt(1))
	}
	for !v.ProbablyPrime(40) {
		v.Add(v, big.NewInt(2))
	}
	return v
}

// BN254Scalar parametrizes the BN254 scalar field (N=3 limbs of 120 bits).
type BN254Scalar struct{}

func (BN254Scalar) NbLimbs() uint32          { return bn254ScalarParams.nbLimbs }
func (BN254Scalar) ModulusBits() uint32      { return bn254ScalarParams.modulusBits }
func (BN254Scalar) IsPrime() bool            { return bn254ScalarParams.isPrime }
func (BN254Scalar) K() uint32                { return bn254ScalarParams.k }
func (BN254Scalar) Modulus() []*big.Int      { return bn254ScalarParams.modulus }
func (BN254Scalar) DoubleModulus() []*big.Int { return bn254ScalarParams.doubleModulus }
func (BN254Scalar) RedcParam() []*big.Int    { return bn254ScalarParams.redcParam }
func (BN254Scalar) PreferredMul() MulKind    { return bn254ScalarParams.preferredMul }

// Secp256k1Base parametrizes the secp256k1 base field (N=3 limbs).
type Secp256k1Base struct{}

func (Secp256k1Base) NbLimbs() uint32          { return secp256k1BaseParams.nbLimbs }
func (Secp256k1Base) ModulusBits() uint32      { return secp256k1BaseParams.modulusBits }
func (Secp256k1Base) IsPrime() bool            { return secp256k1BaseParams.isPrime }
func (Secp256k1Base) K() uint32                { return secp256k1BaseParams.k }
func (Secp256k1Base) Modulus() []*big.Int      { return secp256k1BaseParams.modulus }
func (Secp256k1Base) DoubleModulus() []*big.Int { return secp256k1BaseParams.doubleModulus }
func (Secp256k1Base) RedcParam() []*big.Int    { return secp256k1BaseParams.redcParam }
func (Secp256k1Base) PreferredMul() MulKind    { return secp256k1BaseParams.preferredMul }

// Ed25519Base parametrizes the Ed25519 base field 2^255-19 (N=3 limbs).
type Ed25519Base struct{}

func (Ed25519Base) NbLimbs() uint32          { return ed25519BaseParams.nbLimbs }
func (Ed25519Base) ModulusBits() uint32      { return ed25519BaseParams.modulusBits }
func (Ed25519Base) IsPrime() bool            { return ed25519BaseParams.isPrime }
func (Ed25519Base) K() uint32                { return ed25519BaseParams.k }
func (Ed25519Base) Modulus() []*big.Int      { return ed25519BaseParams.modulus }
func (Ed25519Base) DoubleModulus() []*big.Int { return ed25519BaseParams.doubleModulus }
func (Ed25519Base) RedcParam() []*big.Int    { return ed25519BaseParams.redcParam }
func (Ed25519Base) PreferredMul() MulKind    { return ed25519BaseParams.preferredMul }

// RSA2048 parametrizes a representative 2048-bit RSA modulus (N=18 limbs,
// not prime: inversion and division are not meaningful for it).
type RSA2048 struct{}

func (RSA2048) NbLimbs() uint32          { return rsa2048Params.nbLimbs }
func (RSA2048) ModulusBits() uint32      { return rsa2048Params.modulusBits }
func (RSA2048) IsPrime() bool            { return rsa2048Params.isPrime }
func (RSA2048) K() uint32                { return rsa2048Params.k }
func (RSA2048) Modulus() []*big.Int      { return rsa2048Params.modulus }
func (RSA2048) DoubleModulus() []*big.Int { return rsa2048Params.doubleModulus }
func (RSA2048) RedcParam() []*big.Int    { return rsa2048Params.redcParam }
func (RSA2048) PreferredMul() MulKind    { return rsa2048Params.preferredMul }

// Composite250 parametrizes a 250-bit non-prime modulus (product of two
// ~125-bit primes), used to exercise the add/sub/mul/not-equal paths where
// division and inversion are expected to be meaningless.
type Composite250 struct{}

func (Composite250) NbLimbs() uint32          { return composite250Params.nbLimbs }
func (Composite250) ModulusBits() uint32      { return composite250Params.modulusBits }
func (Composite250) IsPrime() bool            { return composite250Params.isPrime }
func (Composite250) K() uint32                { return composite250Params.k }
func (Composite250) Modulus() []*big.Int      { return composite250Params.modulus }
func (Composite250) DoubleModulus() []*big.Int { return composite250Params.doubleModulus }
func (Composite250) RedcParam() []*big.Int    { return composite250Params.redcParam }
func (Composite250) PreferredMul() MulKind    { return composite250Params.preferredMul }
