package recommender

import "errors"

var (
	ErrUnknownScope     = errors.New("unknown complementary scope")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
)
