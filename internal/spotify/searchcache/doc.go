// Package searchcache persists raw catalog search responses in SQLite
// so repeated imports of the same playlist do not hammer the API.
// Entries expire after a configurable TTL and are pruned lazily.
package searchcache
