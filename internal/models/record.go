package models

// KeyEntry holds a per-record key wrapped under the owner's master key.
// Exactly one entry must exist for every existing Record.
type KeyEntry struct {
	OwnerID    string
	RecordID   string
	WrappedKey []byte
}

// Record is an encrypted record row. NameCt carries the record name
// encrypted under the record key so listing can recover human-readable
// names; RecordID remains the hashed name used for lookup.
type Record struct {
	OwnerID    string
	RecordID   string
	NameCt     []byte
	Ciphertext []byte
}
