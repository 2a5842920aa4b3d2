// Package session implements the authentication state machine. A
// Session is the proof-of-authentication value record operations
// require: it is created only by a successful credential check, holds
// the live master key for its lifetime, and wipes all key material on
// every teardown path.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkoval-dev/lockbox/internal/common"
	"github.com/mkoval-dev/lockbox/internal/cryptox"
	"github.com/mkoval-dev/lockbox/internal/models"
	"github.com/mkoval-dev/lockbox/internal/repositories/users"
)

// State is the session lifecycle state. Only StateAuthenticated admits
// record operations; everything else fails closed.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session holds the identity and key material of one authenticated
// caller. The master key buffer is exclusively owned by the Session and
// must never escape the cryptographic core.
type Session struct {
	id         uuid.UUID
	state      State
	usernameID string
	ownerID    string
	masterKey  []byte
}

// Authenticate verifies credentials against the stored verifier and, on
// success, returns a Session in StateAuthenticated holding the derived
// master key.
//
// Exactly one identity row must match; zero matches is a credential
// mismatch and more than one means a corrupted store, and neither may
// authenticate. Both return ErrAuthFailure.
func Authenticate(ctx context.Context, repo users.Repository, username, password string) (*Session, error) {
	s := &Session{id: uuid.New(), state: StateAuthenticating}

	usernameID := cryptox.IdentifierFor(username)
	verifier := cryptox.Verifier(username, password)

	matches, err := repo.FindByCredentials(ctx, usernameID, verifier)
	if err != nil {
		s.state = StateRejected
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	if len(matches) != 1 {
		s.state = StateRejected
		return nil, common.ErrAuthFailure
	}

	s.usernameID = usernameID
	s.ownerID = cryptox.IdentifierFor(usernameID)
	s.masterKey = cryptox.DeriveMasterKey(username, password)
	s.state = StateAuthenticated
	return s, nil
}

// ID identifies the session for logging. It carries no secret material.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Authenticated reports whether record operations are permitted.
func (s *Session) Authenticated() bool {
	return s != nil && s.state == StateAuthenticated
}

// OwnerID returns the double-hashed owner marker used to scope record
// and key rows.
func (s *Session) OwnerID() string { return s.ownerID }

// MasterKey returns the live master key buffer. Callers use it only to
// wrap and unwrap record keys and must not retain or copy it.
func (s *Session) MasterKey() []byte { return s.masterKey }

// Fail transitions the session to StateRejected and wipes key material.
// It is called when a store inconsistency is detected: once observed,
// the session refuses further record operations rather than risk
// further divergence.
func (s *Session) Fail() {
	s.wipe()
}

// Close tears the session down, overwriting the master key and
// identifier buffers with zeros. It is idempotent and must run on every
// exit path.
func (s *Session) Close() {
	s.wipe()
}

func (s *Session) wipe() {
	common.WipeByteArray(s.masterKey)
	s.masterKey = nil
	s.usernameID = ""
	s.ownerID = ""
	s.state = StateRejected
}

// Register provisions a new identity row from plaintext credentials.
// Only the hashed username and the double-hashed verifier are stored.
// An existing identity with the same username yields ErrUserExists.
//
// Registration is an out-of-band operation: it never touches an
// authenticated session and the core never updates identity rows.
func Register(ctx context.Context, repo users.Repository, username, password string) error {
	usernameID := cryptox.IdentifierFor(username)

	exists, err := repo.Exists(ctx, usernameID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	if exists {
		return common.ErrUserExists
	}

	u := &models.User{
		UsernameID:       usernameID,
		PasswordVerifier: cryptox.Verifier(username, password),
	}
	if err := repo.Create(ctx, u); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}
