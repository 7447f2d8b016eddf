package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"stemcount/internal/domain"
)

var (
	bucketCorpora = []byte("corpora")
	bucketCounts  = []byte("stem_counts")
	bucketMeta    = []byte("meta")
)

// BoltStore persists count snapshots in a bbolt database. Corpus metadata
// lives in the corpora bucket keyed by corpus ID; each stem's bucket is
// stored separately under "<corpusID>/<stem>" so reports can scan a corpus
// without loading the rest of the file.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketCorpora, bucketCounts, bucketMeta}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return checkSchemaVersion(tx)
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

// SaveCorpus writes the metadata and every stem bucket in one transaction,
// replacing any previous snapshot with the same ID.
func (s *BoltStore) SaveCorpus(meta domain.CorpusMeta, counts domain.WordCounts) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		metaData, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketCorpora).Put([]byte(meta.ID), metaData); err != nil {
			return err
		}

		countsBucket := tx.Bucket(bucketCounts)
		if err := deletePrefix(countsBucket, countPrefix(meta.ID)); err != nil {
			return err
		}
		for stem, bucket := range counts {
			data, err := json.Marshal(bucket)
			if err != nil {
				return err
			}
			if err := countsBucket.Put(countKey(meta.ID, stem), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) GetCorpus(id string) (domain.CorpusMeta, error) {
	var meta domain.CorpusMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCorpora).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("corpus not found: %s", id)
		}
		return json.Unmarshal(data, &meta)
	})
	return meta, err
}

// ListCorpora returns every snapshot's metadata in creation order.
func (s *BoltStore) ListCorpora() ([]domain.CorpusMeta, error) {
	var corpora []domain.CorpusMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCorpora)
		return b.ForEach(func(k, v []byte) error {
			var meta domain.CorpusMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			corpora = append(corpora, meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(corpora, func(i, j int) bool {
		return corpora[i].CreatedAt.Before(corpora[j].CreatedAt)
	})
	return corpora, nil
}

func (s *BoltStore) DeleteCorpus(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		corpora := tx.Bucket(bucketCorpora)
		if corpora.Get([]byte(id)) == nil {
			return fmt.Errorf("corpus not found: %s", id)
		}
		if err := corpora.Delete([]byte(id)); err != nil {
			return err
		}
		return deletePrefix(tx.Bucket(bucketCounts), countPrefix(id))
	})
}

// GetCounts loads the full frequency table of a corpus.
func (s *BoltStore) GetCounts(id string) (domain.WordCounts, error) {
	counts := make(domain.WordCounts)
	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCorpora).Get([]byte(id)) == nil {
			return fmt.Errorf("corpus not found: %s", id)
		}

		prefix := countPrefix(id)
		c := tx.Bucket(bucketCounts).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var bucket domain.TermBucket
			if err := json.Unmarshal(v, &bucket); err != nil {
				return err
			}
			counts[string(k[len(prefix):])] = &bucket
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// TopStems returns the n highest-count stems of a corpus, ties broken
// lexicographically. n <= 0 returns all stems.
func (s *BoltStore) TopStems(id string, n int) ([]domain.StemCount, error) {
	counts, err := s.GetCounts(id)
	if err != nil {
		return nil, err
	}
	return counts.TopStems(n), nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func countPrefix(id string) []byte {
	return []byte(id + "/")
}

func countKey(id, stem string) []byte {
	return []byte(id + "/" + stem)
}

// deletePrefix collects the keys first; deleting while the cursor iterates
// can skip entries.
func deletePrefix(b *bbolt.Bucket, prefix []byte) error {
	c := b.Cursor()
	var keys [][]byte
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
