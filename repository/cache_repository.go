package repository

// CacheRepository stores memoised estimates. Implementations must be safe
// for concurrent use.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
