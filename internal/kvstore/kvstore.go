package kvstore

import "context"

// Store is the durable slot the storefront keeps its snapshots in. Values
// are opaque strings; callers own the serialization format.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Slot keys carried over from the storefront's browser-storage days.
const (
	CartSlot     = "bookstoreCart"
	IdentitySlot = "bookstoreUser"
)
