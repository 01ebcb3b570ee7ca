// File: utils/constants.go
package utils

import "time"

// OfferCachePrefix is the prefix used for Redis offer cache keys.
const OfferCachePrefix = "offers:"

// OfferCacheTTL is the time-to-live for cached offer sets. Availability is
// read-before-write with no reservation, so stale entries must age out fast.
const OfferCacheTTL = 2 * time.Minute
