package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system entropy source fails, which is not a
// recoverable condition for a program handling key material.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove sensitive data such as passwords or
// cryptographic keys from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
