// internal/featdb/db.go
package featdb

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"

	"gffx/internal/gff"
)

var (
	featuresBucket  = []byte("features")
	sequencesBucket = []byte("sequences")
)

// DB is a persistent feature index built from one hybrid GFF3+FASTA file.
// Features live in a nested bucket per feature type, msgpack-encoded under
// big-endian sequence numbers so file order is preserved; raw sequences
// live in their own bucket keyed by seqid.
type DB struct {
	b *bolt.DB
}

// Create opens path for writing and resets both buckets.
func Create(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{featuresBucket, sequencesBucket} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return err
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{b: db}, nil
}

// Open opens an existing index read-only.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("feature index %q: %w", path, err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return &DB{b: db}, nil
}

func (d *DB) Close() error { return d.b.Close() }

// PutFeatures appends features to their per-type buckets in one transaction.
func (d *DB) PutFeatures(features []gff.Feature) error {
	return d.b.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(featuresBucket)
		for _, f := range features {
			tb, err := root.CreateBucketIfNotExists([]byte(f.Type))
			if err != nil {
				return err
			}
			n, err := tb.NextSequence()
			if err != nil {
				return err
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, n)
			val, err := msgpack.Marshal(f)
			if err != nil {
				return err
			}
			if err := tb.Put(key, val); err != nil {
				return err
			}
		}
		return nil
	})
}

// PutSequences stores every sequence in one transaction.
func (d *DB) PutSequences(seqs gff.SequenceSet) error {
	return d.b.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sequencesBucket)
		for id, seq := range seqs {
			if err := b.Put([]byte(id), seq); err != nil {
				return err
			}
		}
		return nil
	})
}

// Find returns the indexed features matching f, in insertion order.
func (d *DB) Find(f gff.Filter) ([]gff.Feature, error) {
	var out []gff.Feature
	err := d.b.View(func(tx *bolt.Tx) error {
		tb := tx.Bucket(featuresBucket).Bucket([]byte(f.Type))
		if tb == nil {
			return nil
		}
		return tb.ForEach(func(_, v []byte) error {
			var ft gff.Feature
			if err := msgpack.Unmarshal(v, &ft); err != nil {
				return err
			}
			if ft.Attributes[f.Key] == f.Value {
				out = append(out, ft)
			}
			return nil
		})
	})
	return out, err
}

// Sequence returns the stored sequence for id and whether it exists.
// The returned slice is a copy; bolt-owned memory never escapes the view.
func (d *DB) Sequence(id string) ([]byte, bool, error) {
	var (
		out   []byte
		found bool
	)
	err := d.b.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sequencesBucket).Get([]byte(id))
		if v != nil {
			found = true
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, found, err
}
