package badger

import "fmt"

// Key prefixes for different data types
const (
	vectorPrefix    = "cvec"
	contentPrefix   = "craw"
	jobPrefix       = "vjob"
	scopeLockPrefix = "vjoblock"
)

// makeVectorKey generates a key for a content vector by (userID, contentID).
func makeVectorKey(userID, contentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", vectorPrefix, userID, contentID))
}

// makeVectorUserPrefix generates the scan prefix for one user's vectors.
func makeVectorUserPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", vectorPrefix, userID))
}

// makeContentKey generates a key for a raw content record.
// Format: prefix:userID:type:docID
func makeContentKey(userID, contentType, docID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s:%s", contentPrefix, userID, contentType, docID))
}

// makeContentUserPrefix generates the scan prefix for one user's records.
func makeContentUserPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", contentPrefix, userID))
}

// makeContentTypePrefix generates the scan prefix for one user's records
// of a single content type.
func makeContentTypePrefix(userID, contentType string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s:", contentPrefix, userID, contentType))
}

// makeJobKey generates a key for a vectorization job by ID.
func makeJobKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", jobPrefix, id))
}

// makeScopeLockKey generates the key under which an active job holds
// its scope lock. The value is the owning job's ID.
func makeScopeLockKey(scopeKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s", scopeLockPrefix, scopeKey))
}
