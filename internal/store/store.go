package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketJobs        = []byte("jobs")
	bucketSpecialists = []byte("specialists")
	bucketUsers       = []byte("users")
)

var allBuckets = [][]byte{bucketJobs, bucketSpecialists, bucketUsers}

// Store persists the local API's records in BoltDB.
// With an empty path it keeps everything in memory and forgets it on exit.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex // Protects cache and seq

	// Memory-only mode keeps records here, keyed "bucket:key"
	cache map[string][]byte
	seq   map[string]uint64
}

// Open opens or creates the database at path. An empty path selects memory-only mode.
func Open(path string) (*Store, error) {
	if path == "" {
		return &Store{cache: make(map[string][]byte), seq: make(map[string]uint64)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Persistent reports whether records survive a restart
func (s *Store) Persistent() bool {
	return s.db != nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest any) (bool, error) {
	var data []byte

	if s.db == nil {
		s.mu.RLock()
		data = s.cache[string(bucket)+":"+key]
		s.mu.RUnlock()
	} else {
		err := s.db.View(func(tx *bolt.Tx) error {
			if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if err != nil {
			return false, err
		}
	}

	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

// list decodes every value in bucket in key order
func (s *Store) list(bucket []byte, decode func([]byte) error) error {
	if s.db == nil {
		prefix := string(bucket) + ":"

		s.mu.RLock()
		keys := make([]string, 0, len(s.cache))
		for k := range s.cache {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		values := make([][]byte, len(keys))
		for i, k := range keys {
			values[i] = s.cache[k]
		}
		s.mu.RUnlock()

		for _, v := range values {
			if err := decode(v); err != nil {
				return err
			}
		}
		return nil
	}

	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			return decode(v)
		})
	})
}

// insert stores the value built by build under a fresh sequence number.
// build receives the sequence and returns the key and value to write.
func (s *Store) insert(bucket []byte, build func(seq uint64) (string, any, error)) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		seq := s.seq[string(bucket)] + 1
		key, value, err := build(seq)
		if err != nil {
			return err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		s.seq[string(bucket)] = seq
		s.cache[string(bucket)+":"+key] = data
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key, value, err := build(seq)
		if err != nil {
			return err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// putIfAbsent writes value under key unless the key is taken, reporting whether it wrote
func (s *Store) putIfAbsent(bucket []byte, key string, value any) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	if s.db == nil {
		cacheKey := string(bucket) + ":" + key

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.cache[cacheKey]; ok {
			return false, nil
		}
		s.cache[cacheKey] = data
		return true, nil
	}

	written := false
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b.Get([]byte(key)) != nil {
			return nil
		}
		written = true
		return b.Put([]byte(key), data)
	})
	return written, err
}

// count returns the number of records in bucket
func (s *Store) count(bucket []byte) (int, error) {
	if s.db == nil {
		prefix := string(bucket) + ":"
		s.mu.RLock()
		defer s.mu.RUnlock()
		n := 0
		for k := range s.cache {
			if strings.HasPrefix(k, prefix) {
				n++
			}
		}
		return n, nil
	}

	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucket).Stats().KeyN
		return nil
	})
	return n, err
}

// seqKey formats a sequence so that byte order matches numeric order
func seqKey(seq uint64) string {
	return fmt.Sprintf("%020d", seq)
}
