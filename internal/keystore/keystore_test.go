package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combinedKey(encByte, tweakByte byte) []byte {
	k := make([]byte, CombinedKeySize)
	for i := 0; i < KeySize; i++ {
		k[i] = encByte
	}
	for i := KeySize; i < CombinedKeySize; i++ {
		k[i] = tweakByte
	}
	return k
}

func TestNewStoreStartsZero(t *testing.T) {
	s := New()
	assert.False(t, s.IsKeyNonzero())

	want := [CombinedKeySize]byte{}
	assert.Equal(t, want, s.GetKey())
}

func TestSetKeySplitsHalves(t *testing.T) {
	s := New()
	in := combinedKey(0x11, 0x22)

	require.NoError(t, s.SetKey(in))

	got := s.GetKey()
	assert.Equal(t, in, got[:], "GetKey must reproduce the exact bytes passed to SetKey")
	for _, b := range s.EncryptionKey() {
		assert.Equal(t, byte(0x11), b)
	}
	for _, b := range s.TweakKey() {
		assert.Equal(t, byte(0x22), b)
	}
}

func TestSetKeyRejectsWrongLength(t *testing.T) {
	s := New()

	err := s.SetKey(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	err = s.SetKey(make([]byte, 33))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestIsKeyNonzero(t *testing.T) {
	tests := []struct {
		name     string
		key      []byte
		expected bool
	}{
		{"all zero", combinedKey(0x00, 0x00), false},
		{"enc key set", combinedKey(0x01, 0x00), true},
		{"tweak key set", combinedKey(0x00, 0x01), true},
		{"last byte only", func() []byte {
			k := make([]byte, CombinedKeySize)
			k[CombinedKeySize-1] = 1
			return k
		}(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.SetKey(tc.key))
			assert.Equal(t, tc.expected, s.IsKeyNonzero())
		})
	}
}

func TestClearKeyZeroesAndIsObservable(t *testing.T) {
	s := New()
	require.NoError(t, s.SetKey(combinedKey(0xAB, 0xCD)))
	require.True(t, s.IsKeyNonzero())

	s.ClearKey()

	assert.False(t, s.IsKeyNonzero())
	assert.Equal(t, [CombinedKeySize]byte{}, s.GetKey())
}
