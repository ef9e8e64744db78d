package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBytesRoundTrip checks spec.md's "Byte round-trips" property:
// BytesBE(FromBytesBE(data)) == data for canonical values below the
// modulus, across several built-in parameter sets.
func TestBytesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	t.Run("BN254Scalar", func(t *testing.T) {
		byteLen := (int(BN254Scalar{}.ModulusBits()) + 7) / 8
		data := make([]byte, byteLen)
		r.Read(data)
		data[0] &= 0x1f // below 2^253, so under the 254-bit modulus
		got := BytesBE[BN254Scalar](FromBytesBE[BN254Scalar](data))
		require.Equal(t, data, got)
	})

	t.Run("RSA2048", func(t *testing.T) {
		byteLen := (int(RSA2048{}.ModulusBits()) + 7) / 8
		data := make([]byte, byteLen)
		r.Read(data)
		data[0] &= 0x7f
		got := BytesBE[RSA2048](FromBytesBE[RSA2048](data))
		require.Equal(t, data, got)
	})
}

func TestFromBytesBERejectsOversizedValue(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), uint(BN254Scalar{}.ModulusBits()))
	data := over.Bytes()
	require.Panics(t, func() { FromBytesBE[BN254Scalar](data) })
}
