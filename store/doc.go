// Package store implements persistence for the credential workflow on
// MongoDB.
//
// Three collections are involved: users (root identity records), otps and
// passwordresettokens (ephemeral challenges keyed by user). Unique indexes
// back the workflow invariants: one account per email, and at most one live
// ephemeral record per user per purpose. Reads and writes rely on MongoDB's
// per-document atomicity; no cross-document transactions are used.
package store
