// This file defines the catalog database schema.
// Implements: prd003-catalog-storage R3 (SQLite schema).
package sqlite

// Schema DDL for the catalog database. The ordinal column keeps the
// catalog's insertion order stable across load/save round trips.
const createSubstances = `CREATE TABLE IF NOT EXISTS substances (
    key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    freezing_point REAL NOT NULL,
    boiling_point REAL NOT NULL,
    ordinal INTEGER NOT NULL UNIQUE
);`
