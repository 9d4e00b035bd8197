// Package store implements the snapshot-backed catalog and order
// stores. State lives in memory; every mutation rewrites the full
// store snapshot to durable storage, and the in-memory state only
// advances once the write succeeded.
package store

// Snapshotter is the durable key-value store a snapshot store persists
// into. The Redis client satisfies it; tests use an in-memory fake.
type Snapshotter interface {
	SaveSnapshot(key string, value interface{}) error
	LoadSnapshot(key string, dest interface{}) (bool, error)
}

const (
	dishesKey = "food:dishes"
	ordersKey = "food:orders"
)
