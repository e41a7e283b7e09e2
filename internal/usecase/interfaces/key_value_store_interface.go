package interfaces

import "context"

// IKeyValueStore is the persistence collaborator behind the entity stores.
//
// Get reports found=false for an absent key; it returns an error only when
// the backend itself fails. Set replaces the whole value in one write.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
