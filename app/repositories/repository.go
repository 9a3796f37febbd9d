package repositories

import (
	"errors"
	"sort"
	"sync"

	"github.com/arypfer/Proty-Content-Calendar/app/models"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository stores posts in an in-memory Badger instance. Nothing touches
// disk: state lives for the lifetime of the process and resets on restart.
type Repository struct {
	db    *badger.DB
	seq   *badger.Sequence
	mutex sync.RWMutex
}

// NewRepository opens the in-memory store.
func NewRepository() (*Repository, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	seq, err := db.GetSequence([]byte(postSeqKey), 64)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{
		db:  db,
		seq: seq,
	}, nil
}

func (r *Repository) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if err := r.seq.Release(); err != nil {
		return err
	}
	return r.db.Close()
}

// Create assigns the post a fresh id and insertion-order number, then
// stores it.
func (r *Repository) Create(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	n, err := r.seq.Next()
	if err != nil {
		return err
	}
	post.Seq = n + 1
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

func (r *Repository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Update overwrites the stored record for post.ID.
func (r *Repository) Update(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// Delete removes the post with the given id. Deleting an absent id is a
// no-op.
func (r *Repository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(postKey(id))
	})
}

// List returns every post in insertion order. Badger iterates keys
// lexicographically, so ordering is restored from the sequence number.
func (r *Repository) List() ([]*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Seq < posts[j].Seq
	})

	return posts, nil
}

// Clear drops every stored post.
func (r *Repository) Clear() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.db.DropAll()
}
