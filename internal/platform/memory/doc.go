// Package memory provides process-local, insertion-ordered
// implementations of the store interfaces. Nothing survives a restart.
//
// Each store guards its map with a single mutex, and entities are
// copied on the way in and on the way out, so callers can never mutate
// stored state without going through the store.
package memory
