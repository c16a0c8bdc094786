package storage

// KV is the persistence collaborator for the portion log and favorites.
// Implementations store opaque string values under string keys. A missing
// key is not an error; Get reports presence with its second return value.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
