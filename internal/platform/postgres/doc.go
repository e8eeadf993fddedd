// Package postgres provides durable implementations of the store
// interfaces backed by a PostgreSQL database, accessed through
// database/sql with the pgx driver.
//
// The schema is managed by the embedded goose migrations in
// migrations/. Relational constraints back up the invariants the
// facade enforces: unique emails, one review per user per place, and
// cascading deletes along the ownership graph.
package postgres
