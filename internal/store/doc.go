// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Two interchangeable implementations exist: platform/memory (process
// local, insertion ordered, no persistence across restarts) and
// platform/postgres (durable, relational constraints).
package store
