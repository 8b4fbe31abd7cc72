package badger

import (
	"bytes"
	"context"
	"sort"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	"github.com/dgraph-io/badger/v4"
)

// ContentRepository implements storage.ContentRepository for BadgerDB.
type ContentRepository struct {
	backend *Backend
}

var _ storage.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(backend *Backend) *ContentRepository {
	return &ContentRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *ContentRepository) Close() error {
	return nil
}

// PutContent stores a raw content record.
func (r *ContentRepository) PutContent(ctx context.Context, record *core.ContentRecord) error {
	if err := core.ValidateContentRecord(record); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeContentKey(record.UserID, string(record.Type), record.DocID)
		if err := tx.Set(key, storage.MarshalContentRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListUserIDs returns the IDs of all users with content, sorted.
func (r *ContentRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)

	err := r.scanRecords(nil, func(record *core.ContentRecord) {
		seen[record.UserID] = true
	})
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(seen))
	for id := range seen {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

// ListContent returns a user's records of one type, sorted by doc ID.
func (r *ContentRepository) ListContent(ctx context.Context, userID string, contentType core.ContentType) ([]*core.ContentRecord, error) {
	var records []*core.ContentRecord

	prefix := makeContentTypePrefix(userID, string(contentType))
	err := r.scanRecords(prefix, func(record *core.ContentRecord) {
		records = append(records, record)
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DocID < records[j].DocID
	})
	return records, nil
}

// CountContent returns the exact number of records for one user.
func (r *ContentRepository) CountContent(ctx context.Context, userID string) (int64, error) {
	return r.countKeys(makeContentUserPrefix(userID))
}

// CountByType counts records of one type across all users. Type sits
// in the middle of the key, so this is a full scan rather than a
// prefix count; job-size estimation tolerates that cost.
func (r *ContentRepository) CountByType(ctx context.Context, contentType core.ContentType) (int64, error) {
	var count int64
	err := r.scanRecords(nil, func(record *core.ContentRecord) {
		if record.Type == contentType {
			count++
		}
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll returns the total number of records across all users.
func (r *ContentRepository) CountAll(ctx context.Context) (int64, error) {
	return r.countKeys([]byte(contentPrefix + ":"))
}

// scanRecords iterates records under prefix (all records if prefix is
// nil) and calls fn for each.
func (r *ContentRepository) scanRecords(prefix []byte, fn func(*core.ContentRecord)) error {
	if prefix == nil {
		prefix = []byte(contentPrefix + ":")
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalContentRecord(val)
				if err != nil {
					return err
				}
				fn(record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// countKeys counts keys under a prefix without reading values.
func (r *ContentRepository) countKeys(prefix []byte) (int64, error) {
	var count int64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if !bytes.HasPrefix(iter.Item().Key(), prefix) {
				continue
			}
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}
