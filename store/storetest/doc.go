// Package storetest provides in-memory stand-ins for the Mongo-backed
// stores, honoring the same contracts: ErrNotFound on missing documents,
// ErrDuplicate on unique-index violations (one account per email, one live
// ephemeral record per user). Workflow and handler tests run against these
// without a database.
package storetest
