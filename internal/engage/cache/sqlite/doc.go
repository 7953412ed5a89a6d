// Package sqlite persists cache payload snapshots in SQLite.
//
// The snapshot only contains derived state that can be rebuilt from the
// remote API; it exists so a restarted client warms from disk instead of
// refetching every view at once.
package sqlite
