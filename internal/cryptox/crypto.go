// Package cryptox implements the cryptographic core of Lockbox: the
// primitive provider (hash, AEAD, KDF, randomness), the identifier
// scheme that turns plaintext names into non-reversible lookup keys,
// and the key hierarchy that derives the session master key and wraps
// per-record keys under it.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/mkoval-dev/lockbox/internal/common"
)

// KeySize is the length of every symmetric key in the hierarchy
// (AES-256 for both the master key and per-record keys).
const KeySize = 32

// Hash returns the SHA3-512 digest of data.
func Hash(data []byte) []byte {
	d := sha3.Sum512(data)
	return d[:]
}

// IdentifierFor derives a stable, non-reversible lookup identifier for a
// plaintext value (a username or a record name). Identifiers are
// hex-encoded so they can be stored and compared as TEXT columns.
//
// Two distinct users choosing the same record name produce the same
// identifier; record rows are additionally scoped by the owner
// identifier, so this is not a collision.
func IdentifierFor(value string) string {
	return hex.EncodeToString(Hash([]byte(value)))
}

// Verifier computes the stored password verifier for a credential pair:
// Hash(Hash(username || password)), hex-encoded. The inner hash is the
// same key material the master-key derivation salts with, so the
// verifier never reveals the derivation salt directly.
func Verifier(username, password string) string {
	inner := Hash([]byte(username + password))
	return hex.EncodeToString(Hash(inner))
}

// DeriveKey derives a KeySize-byte key from secret and salt using
// HKDF over SHA3-512.
func DeriveKey(secret, salt []byte) []byte {
	r := hkdf.New(sha3.New512, secret, salt, nil)
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		panic(err) // HKDF over a hash function cannot fail here
	}
	return key
}

// DeriveMasterKey derives the session master key from credentials:
// the KDF secret is the password, the salt is Hash(username || password).
// The derivation is deterministic: the same login must re-derive the
// same master key so previously wrapped record keys remain unwrappable.
//
// The returned key must never be persisted; it lives only inside a
// session and is wiped on teardown.
func DeriveMasterKey(username, password string) []byte {
	keyMaterial := Hash([]byte(username + password))
	defer common.WipeByteArray(keyMaterial)
	return DeriveKey([]byte(password), keyMaterial)
}

// NewRecordKey generates a fresh random per-record key. A record key is
// used once per record creation and never reused or re-derived.
func NewRecordKey() []byte {
	return common.GenerateRandByteArray(KeySize)
}

// Encrypt seals plaintext under key with AES-256-GCM. A fresh random
// nonce is generated per call and prepended to the returned blob, since
// the same key encrypts many values over its lifetime.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a nonce-prefixed blob produced by Encrypt. Any
// malformed input or failed authentication tag yields ErrDecrypt.
func Decrypt(key, blob []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(blob) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: blob shorter than nonce", common.ErrDecrypt)
	}
	nonce, ct := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecrypt, err)
	}
	return plaintext, nil
}

// WrapKey encrypts a record key under the master key for storage.
func WrapKey(recordKey, masterKey []byte) ([]byte, error) {
	wrapped, err := Encrypt(masterKey, recordKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyUnwrap, err)
	}
	return wrapped, nil
}

// UnwrapKey decrypts a stored wrapped key under the master key. A
// malformed blob or failed authentication tag yields ErrKeyUnwrap.
func UnwrapKey(wrapped, masterKey []byte) ([]byte, error) {
	recordKey, err := Decrypt(masterKey, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKeyUnwrap, err)
	}
	if len(recordKey) != KeySize {
		common.WipeByteArray(recordKey)
		return nil, fmt.Errorf("%w: unexpected key length %d", common.ErrKeyUnwrap, len(recordKey))
	}
	return recordKey, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
