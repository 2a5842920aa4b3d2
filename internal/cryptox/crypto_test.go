package cryptox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval-dev/lockbox/internal/common"
)

func TestIdentifierFor_DeterministicAndDistinct(t *testing.T) {
	a1 := IdentifierFor("alice")
	a2 := IdentifierFor("alice")
	b := IdentifierFor("bob")

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)
	assert.Len(t, a1, 128) // hex of SHA3-512
}

func TestVerifier_DependsOnBothInputs(t *testing.T) {
	v := Verifier("alice", "pw1")
	assert.Equal(t, v, Verifier("alice", "pw1"))
	assert.NotEqual(t, v, Verifier("alice", "pw2"))
	assert.NotEqual(t, v, Verifier("bob", "pw1"))
}

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	k1 := DeriveMasterKey("alice", "pw1")
	k2 := DeriveMasterKey("alice", "pw1")
	k3 := DeriveMasterKey("alice", "pw2")

	require.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := NewRecordKey()
	plaintext := []byte("the quick brown fox")

	blob, err := Encrypt(key, plaintext)
	require.NoError(t, err)

	got, err := Decrypt(key, blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := NewRecordKey()
	b1, err := Encrypt(key, []byte("x"))
	require.NoError(t, err)
	b2, err := Encrypt(key, []byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, b1, b2)
}

func TestDecrypt_Tampered(t *testing.T) {
	key := NewRecordKey()
	blob, err := Encrypt(key, []byte("payload"))
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xff
	_, err = Decrypt(key, blob)
	assert.True(t, errors.Is(err, common.ErrDecrypt))
}

func TestDecrypt_TooShort(t *testing.T) {
	key := NewRecordKey()
	_, err := Decrypt(key, []byte{0x01, 0x02})
	assert.True(t, errors.Is(err, common.ErrDecrypt))
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	master := DeriveMasterKey("alice", "pw1")
	recordKey := NewRecordKey()

	wrapped, err := WrapKey(recordKey, master)
	require.NoError(t, err)
	assert.NotEqual(t, recordKey, wrapped)

	got, err := UnwrapKey(wrapped, master)
	require.NoError(t, err)
	assert.Equal(t, recordKey, got)
}

func TestUnwrap_WrongMasterKey(t *testing.T) {
	master := DeriveMasterKey("alice", "pw1")
	other := DeriveMasterKey("alice", "pw2")

	wrapped, err := WrapKey(NewRecordKey(), master)
	require.NoError(t, err)

	_, err = UnwrapKey(wrapped, other)
	assert.True(t, errors.Is(err, common.ErrKeyUnwrap))
}

func TestUnwrap_CorruptedBlob(t *testing.T) {
	master := DeriveMasterKey("alice", "pw1")
	_, err := UnwrapKey([]byte("garbage"), master)
	assert.True(t, errors.Is(err, common.ErrKeyUnwrap))
}
