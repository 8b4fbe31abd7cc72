package badger

import (
	"context"
	"time"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	"github.com/dgraph-io/badger/v4"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) *VectorRepository {
	return &VectorRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *VectorRepository) Close() error {
	return nil
}

// UpsertVector creates or replaces the vector under (UserID, ContentID).
func (r *VectorRepository) UpsertVector(ctx context.Context, vector *core.ContentVector) error {
	if err := core.ValidateContentVector(vector); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeVectorKey(vector.UserID, vector.ContentID)

		now := time.Now().UTC()
		if old, err := r.readVector(tx, key); err != nil {
			return err
		} else if old != nil {
			// Upsert keeps the original creation time
			vector.Metadata.CreatedAt = old.Metadata.CreatedAt
		} else if vector.Metadata.CreatedAt.IsZero() {
			vector.Metadata.CreatedAt = now
		}
		vector.Metadata.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalContentVector(vector)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetVector retrieves a single vector by (userID, contentID).
func (r *VectorRepository) GetVector(ctx context.Context, userID, contentID string) (*core.ContentVector, error) {
	var vector *core.ContentVector
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		vector, err = r.readVector(tx, makeVectorKey(userID, contentID))
		if err != nil {
			return err
		}
		if vector == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// ListVectors retrieves all vectors stored for a user.
func (r *VectorRepository) ListVectors(ctx context.Context, userID string) ([]*core.ContentVector, error) {
	var vectors []*core.ContentVector

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeVectorUserPrefix(userID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				vector, err := storage.UnmarshalContentVector(val)
				if err != nil {
					return err
				}
				vectors = append(vectors, vector)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return vectors, nil
}

// ExistingContentIDs returns contentID -> text hash for a user's vectors.
func (r *VectorRepository) ExistingContentIDs(ctx context.Context, userID string) (map[string]core.ContentHash, error) {
	existing := make(map[string]core.ContentHash)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeVectorUserPrefix(userID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				vector, err := storage.UnmarshalContentVector(val)
				if err != nil {
					return err
				}
				existing[vector.ContentID] = vector.TextHash
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteVectors removes vectors by content ID. Missing IDs are ignored.
func (r *VectorRepository) DeleteVectors(ctx context.Context, userID string, contentIDs ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, contentID := range contentIDs {
			if err := tx.Delete(makeVectorKey(userID, contentID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readVector reads and unmarshals a vector, or returns nil if absent.
func (r *VectorRepository) readVector(tx *badger.Txn, key []byte) (*core.ContentVector, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var vector *core.ContentVector
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		vector, unmarshalErr = storage.UnmarshalContentVector(val)
		return unmarshalErr
	})
	return vector, err
}
