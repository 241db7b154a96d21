package utils

import "time"

// AuthCachePrefix is the prefix used for Redis auth token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for auth token cache entries.
const AuthCacheTTL = 24 * time.Hour
