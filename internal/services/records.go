// Package services contains the record store: CRUD over encrypted
// records built on the session's master key and the per-record key
// hierarchy. Plaintext names and contents exist only in memory; the
// backing store sees hashed identifiers and ciphertext.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mkoval-dev/lockbox/internal/common"
	"github.com/mkoval-dev/lockbox/internal/cryptox"
	"github.com/mkoval-dev/lockbox/internal/dbx"
	"github.com/mkoval-dev/lockbox/internal/logging"
	"github.com/mkoval-dev/lockbox/internal/models"
	"github.com/mkoval-dev/lockbox/internal/repositories/repomanager"
	"github.com/mkoval-dev/lockbox/internal/session"
)

// RecordStore executes record operations on behalf of one authenticated
// session. Every operation takes the session as proof of
// authentication and fails with ErrSessionLocked unless the session is
// live.
//
// A mutex serializes operations: each one spans at least two dependent
// storage lookups (key entry, then record) whose consistency a
// concurrent caller could violate.
type RecordStore struct {
	store *repomanager.Store
	log   logging.Logger
	mu    sync.Mutex
}

func NewRecordStore(store *repomanager.Store, log logging.Logger) *RecordStore {
	return &RecordStore{store: store, log: log}
}

// Create stores a new named record. A fresh record key encrypts the
// payload and the record name; the key is wrapped under the session
// master key. The key entry and the record row are inserted in one
// transaction, so a crash cannot leave an orphaned key entry.
//
// An existing record with the same name yields ErrRecordExists and no
// writes occur.
func (s *RecordStore) Create(ctx context.Context, sess *session.Session, name, plaintext string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !sess.Authenticated() {
		return common.ErrSessionLocked
	}

	ownerID := sess.OwnerID()
	recordID := cryptox.IdentifierFor(name)

	existing, err := s.store.Manager.Keys(s.store.DB).Get(ctx, ownerID, recordID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	if len(existing) > 0 {
		return common.ErrRecordExists
	}

	recordKey := cryptox.NewRecordKey()
	defer common.WipeByteArray(recordKey)

	wrapped, err := cryptox.WrapKey(recordKey, sess.MasterKey())
	if err != nil {
		return err
	}
	nameCt, err := cryptox.Encrypt(recordKey, []byte(name))
	if err != nil {
		return err
	}
	ciphertext, err := cryptox.Encrypt(recordKey, []byte(plaintext))
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		entry := &models.KeyEntry{OwnerID: ownerID, RecordID: recordID, WrappedKey: wrapped}
		if err := s.store.Manager.Keys(tx).Create(ctx, entry); err != nil {
			return err
		}
		rec := &models.Record{OwnerID: ownerID, RecordID: recordID, NameCt: nameCt, Ciphertext: ciphertext}
		return s.store.Manager.Records(tx).Create(ctx, rec)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "record created", "session_id", sess.ID())
	return nil
}

// Retrieve returns the decrypted content of a named record.
func (s *RecordStore) Retrieve(ctx context.Context, sess *session.Session, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordKey, rec, err := s.lookup(ctx, sess, name)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(recordKey)

	plaintext, err := cryptox.Decrypt(recordKey, rec.Ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Edit overwrites the content of an existing record, re-encrypting
// under the existing record key. The key is not rotated on edit.
func (s *RecordStore) Edit(ctx context.Context, sess *session.Session, name, plaintext string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordKey, rec, err := s.lookup(ctx, sess, name)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(recordKey)

	ciphertext, err := cryptox.Encrypt(recordKey, []byte(plaintext))
	if err != nil {
		return err
	}

	if err := s.store.Manager.Records(s.store.DB).UpdateCiphertext(ctx, rec.OwnerID, rec.RecordID, ciphertext); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// Delete removes a record and its key entry as one transaction.
func (s *RecordStore) Delete(ctx context.Context, sess *session.Session, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordKey, rec, err := s.lookup(ctx, sess, name)
	if err != nil {
		return err
	}
	common.WipeByteArray(recordKey)

	err = dbx.WithTx(ctx, s.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.store.Manager.Records(tx).Delete(ctx, rec.OwnerID, rec.RecordID); err != nil {
			return err
		}
		return s.store.Manager.Keys(tx).Delete(ctx, rec.OwnerID, rec.RecordID)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Info(ctx, "record deleted", "session_id", sess.ID())
	return nil
}

// List returns the plaintext names of every record the session owns,
// sorted. Names are recovered by unwrapping each record key and
// decrypting the stored encrypted name.
func (s *RecordStore) List(ctx context.Context, sess *session.Session) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !sess.Authenticated() {
		return nil, common.ErrSessionLocked
	}

	ownerID := sess.OwnerID()
	recs, err := s.store.Manager.Records(s.store.DB).GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		entries, err := s.store.Manager.Keys(s.store.DB).Get(ctx, ownerID, rec.RecordID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
		}
		if len(entries) != 1 {
			return nil, s.failConsistency(ctx, sess, "record without exactly one key entry")
		}

		recordKey, err := cryptox.UnwrapKey(entries[0].WrappedKey, sess.MasterKey())
		if err != nil {
			return nil, err
		}
		name, err := cryptox.Decrypt(recordKey, rec.NameCt)
		common.WipeByteArray(recordKey)
		if err != nil {
			return nil, s.failConsistency(ctx, sess, "record name undecryptable")
		}
		names = append(names, string(name))
	}

	sort.Strings(names)
	return names, nil
}

// Exists reports whether a named record exists; it is Retrieve with
// ErrRecordNotFound mapped to false.
func (s *RecordStore) Exists(ctx context.Context, sess *session.Session, name string) (bool, error) {
	_, err := s.Retrieve(ctx, sess, name)
	if err != nil {
		if errors.Is(err, common.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Share is declared for interface completeness and is not implemented.
func (s *RecordStore) Share(ctx context.Context, sess *session.Session, name, user string) error {
	if !sess.Authenticated() {
		return common.ErrSessionLocked
	}
	return common.ErrNotImplemented
}

// lookup resolves a record name to its unwrapped record key and record
// row, enforcing the exactly-one invariant on both tables. The caller
// owns the returned key and must wipe it.
//
// A record and its key entry must exist together; if exactly one of the
// pair is present the store is inconsistent, the session is failed, and
// ErrConsistency is returned.
func (s *RecordStore) lookup(ctx context.Context, sess *session.Session, name string) ([]byte, *models.Record, error) {
	if !sess.Authenticated() {
		return nil, nil, common.ErrSessionLocked
	}

	ownerID := sess.OwnerID()
	recordID := cryptox.IdentifierFor(name)

	entries, err := s.store.Manager.Keys(s.store.DB).Get(ctx, ownerID, recordID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	recs, err := s.store.Manager.Records(s.store.DB).Get(ctx, ownerID, recordID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	switch {
	case len(entries) == 0 && len(recs) == 0:
		return nil, nil, common.ErrRecordNotFound
	case len(entries) == 1 && len(recs) == 1:
		// healthy pair
	default:
		return nil, nil, s.failConsistency(ctx, sess, "record/key entry existence mismatch")
	}

	recordKey, err := cryptox.UnwrapKey(entries[0].WrappedKey, sess.MasterKey())
	if err != nil {
		return nil, nil, err
	}
	return recordKey, &recs[0], nil
}

// failConsistency marks the session unusable and returns
// ErrConsistency. Consistency violations indicate a prior partial
// write or external tampering and are unrecoverable within a session.
func (s *RecordStore) failConsistency(ctx context.Context, sess *session.Session, detail string) error {
	s.log.Error(ctx, "store consistency violation, session failed",
		"session_id", sess.ID(), "detail", detail)
	sess.Fail()
	return fmt.Errorf("%w: %s", common.ErrConsistency, detail)
}
