package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the storage format version. Increment on breaking
// changes to the bucket layout.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// checkSchemaVersion stamps a fresh database and rejects one written by a
// newer format. Snapshots are immutable and rewritten whole by SaveCorpus,
// so version bumps never need data migration, only a rebuild.
func checkSchemaVersion(tx *bbolt.Tx) error {
	b := tx.Bucket(bucketMeta)

	data := b.Get(keySchemaVersion)
	if data == nil {
		version, err := json.Marshal(CurrentSchemaVersion)
		if err != nil {
			return err
		}
		return b.Put(keySchemaVersion, version)
	}

	var version int
	if err := json.Unmarshal(data, &version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > CurrentSchemaVersion {
		return fmt.Errorf("database created by newer version (v%d > v%d)", version, CurrentSchemaVersion)
	}
	return nil
}

// Clear removes every snapshot from the database, keeping the schema
// version stamp.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketCorpora, bucketCounts} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}
