// Package models defines the persisted row types of the Lockbox schema.
// Only hashed identifiers and encrypted material ever reach the store;
// plaintext usernames, record names, and contents are absent by design.
package models

// User is an identity row. UsernameID is the hashed username and
// PasswordVerifier is the double-hashed credential pair; at most one
// row exists per UsernameID. The authenticated core reads these rows
// but never updates them.
type User struct {
	UsernameID       string
	PasswordVerifier string
}
