// Package common defines shared sentinel errors and small byte-slice
// helpers used across Lockbox layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Authentication and session lifecycle.
	ErrAuthFailure   = errors.New("authentication failure")
	ErrSessionLocked = errors.New("session locked")
	ErrUserExists    = errors.New("user already exists")

	// Record lifecycle.
	ErrRecordExists   = errors.New("record already exists")
	ErrRecordNotFound = errors.New("record not found")

	// Cryptographic failures (corrupted or tampered material).
	ErrKeyUnwrap = errors.New("key unwrap failure")
	ErrDecrypt   = errors.New("decrypt failure")

	// Backing store failures.
	ErrStorage = errors.New("storage error")

	// ErrConsistency means a record and its key entry disagree in
	// existence. It is fatal for the observing session.
	ErrConsistency = errors.New("store consistency violation")

	ErrNotImplemented = errors.New("not implemented")
)
