package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignKnownVector(t *testing.T) {
	sig := Sign([]byte("platform_id=42"), []byte("s3cr3t"))
	require.Equal(t, "535439c2241e88e38a48a5f25002d8bfd09067049ecbb840bf9d4eec4193f6e1", sig)
	require.Len(t, sig, 64)
}

func TestSignDeterministic(t *testing.T) {
	payload := []byte("platform_id=100&order_id=order-1&amount=10.0")
	first := Sign(payload, []byte("secret"))
	second := Sign(payload, []byte("secret"))

	assert.Equal(t, first, second)
	assert.Equal(t, "6a2849751cc36b8c2a4614116d931a01ed6ee5b3f2d4c06e2a4ec455b7c6c909", first)
}

func TestSignChangesWithPayload(t *testing.T) {
	assert.NotEqual(t,
		Sign([]byte("platform_id=42"), []byte("s3cr3t")),
		Sign([]byte("platform_id=43"), []byte("s3cr3t")),
	)
	assert.Equal(t,
		"4b33c97e6ae2691cabb9cf357214c493a4690033f68b357babe281234b3beacd",
		Sign([]byte("platform_id=43"), []byte("s3cr3t")),
	)
	assert.NotEqual(t,
		Sign([]byte("platform_id=42"), []byte("s3cr3t")),
		Sign([]byte("platform_id=42"), []byte("other")),
	)
}
