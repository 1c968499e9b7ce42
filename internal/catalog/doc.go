// Package catalog persists discovered, curated, and discarded DAW projects
// in SQLite and owns their lifecycle transitions.
//
// The Store manages the database connection, schema initialization, a
// single-writer file lock, and the promote/discard transitions. A discovered
// record is never mutated after insertion; promotion and rejection create
// curated and discarded records that reference it, and a discovered id may
// be referenced by at most one of the two.
//
// Treat this package as the single source of truth for catalog semantics;
// schema changes go into schema.sql with a schemaVersion bump.
package catalog
