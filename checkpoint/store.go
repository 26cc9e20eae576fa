// Package checkpoint persists a Prover's Snapshot to a single-file
// embedded database between runs or across a process restart
// (SPEC_FULL.md §6): "Accessors for active/passive sizes and for
// iterating current clauses (for checkpointing and for plugins)"
// names the need this package exists to serve.
package checkpoint

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/zetaprover/zeta/core/clause"
)

var bucketName = []byte("zeta_snapshots")

// Record is the on-disk shape of one checkpointed snapshot: the ids
// the caller needs to resolve back into clause pointers via
// Prover.ResolveClause, plus a digest guarding against a torn write.
type Record struct {
	RunID       string
	Step        int
	ActiveIDs   []clause.Id
	PassiveSize int
	SimplIDs    []clause.Id
	Digest      [blake2b.Size256]byte
}

// Store is a BoltDB-backed snapshot store: one bucket, keyed by run
// id plus a monotonically increasing sequence number so a caller can
// keep a history of checkpoints for one run rather than only the
// latest.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if absent) the BoltDB file at path and ensures
// the snapshot bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "opening checkpoint store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "initializing checkpoint bucket")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying BoltDB file handle.
func (s *Store) Close() error { return s.db.Close() }

// Save writes one snapshot under runID at sequence seq, digesting the
// encoded payload with blake2b so Load can detect a corrupt or
// partial record on restore.
func (s *Store) Save(runID string, seq uint64, step int, activeIDs, simplIDs []clause.Id, passiveSize int) error {
	rec := Record{RunID: runID, Step: step, ActiveIDs: activeIDs, PassiveSize: passiveSize, SimplIDs: simplIDs}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload{rec.RunID, rec.Step, rec.ActiveIDs, rec.PassiveSize, rec.SimplIDs}); err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	rec.Digest = blake2b.Sum256(buf.Bytes())

	var full bytes.Buffer
	if err := gob.NewEncoder(&full).Encode(rec); err != nil {
		return errors.Wrap(err, "encoding snapshot record")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		return b.Put(key(runID, seq), full.Bytes())
	})
}

// Load reads back the snapshot at runID/seq and verifies its digest,
// returning an error if the stored bytes were torn or tampered with.
func (s *Store) Load(runID string, seq uint64) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		raw := b.Get(key(runID, seq))
		if raw == nil {
			return errors.Errorf("no checkpoint for run %s seq %d", runID, seq)
		}
		return gob.NewDecoder(bytes.NewReader(raw)).Decode(&rec)
	})
	if err != nil {
		return Record{}, errors.Wrap(err, "loading checkpoint")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload{rec.RunID, rec.Step, rec.ActiveIDs, rec.PassiveSize, rec.SimplIDs}); err != nil {
		return Record{}, errors.Wrap(err, "re-encoding snapshot for digest check")
	}
	want := blake2b.Sum256(buf.Bytes())
	if want != rec.Digest {
		return Record{}, errors.Errorf("checkpoint %s seq %d failed digest check: torn write", runID, seq)
	}
	return rec, nil
}

// payload is the digested subset of Record — everything except the
// digest itself, so Save/Load can recompute it deterministically.
type payload struct {
	RunID       string
	Step        int
	ActiveIDs   []clause.Id
	PassiveSize int
	SimplIDs    []clause.Id
}

func key(runID string, seq uint64) []byte {
	b := make([]byte, len(runID)+8)
	copy(b, runID)
	binary.BigEndian.PutUint64(b[len(runID):], seq)
	return b
}
