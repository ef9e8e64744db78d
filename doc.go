/*
Package bignum implements modular arithmetic over arbitrarily sized integers
for use inside zero-knowledge arithmetic circuits built with gnark.

It lets a circuit author constrain relations of the form

	a ⊙ b ≡ c (mod p),  ⊙ ∈ {+, -, ×, ÷}

where p is a modulus of up to roughly 7680 bits, independent of the native
scalar field the circuit itself runs over. The modulus is a compile-time
parameter supplied by a [Params] implementation; it need not be prime unless
inversion or division is required.

# Representation

A value is a [BigInt], a fixed-length vector of limbs in base 2^120, stored
least-significant limb first. A BigInt is "range-valid" when every limb is
below 2^120 (and the top limb is bounded tighter, by the modulus bit length);
it is "field-valid" when its integer value is additionally below the
modulus. Most operators accept and return range-valid values; only
[Field.AssertIsInRange] and [Field.AssertIsInField] actually prove these
properties in-circuit.

# Witness vs. constraint duality

Every arithmetic operation in this package has two bodies. The witness body
(the functions in coreops.go, reduce.go and mul.go operating on *big.Int)
computes a value with no circuit output, and runs only during proving. The
constraint body ([Field] methods and [EvaluateQuadraticExpression]) emits the
constraints that prove the witness body computed correctly, and never
branches on secret data. They must agree by construction: the arithmetic
[Field] methods (Add, Sub, Mul, Div) first derive their result via a
solver hint wrapping the witness body, then assert the result is
consistent via [EvaluateQuadraticExpression].

# The quadratic expression engine

[EvaluateQuadraticExpression] is the centerpiece: it constrains a sum of
products of linear combinations plus a sum of linear terms to be congruent
to zero modulo p, using a single integer quotient and a borrow-flag
zero-check scheme that avoids wide native-field range checks. See its doc
comment for the exact recurrence.
*/
package bignum
