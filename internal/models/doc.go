// Package models defines the core domain models for the share splitter.
//
// # Models
//
//   - Participant: a person sharing bills, with exactly one AllocationMode
//   - Bill: a single recorded expense with a positive total
//   - Allocation: the calculated share of one participant for a given total
//
// There is exactly one participant roster; every bill is split across all of it.
//
// # Allocation modes
//
// A participant either pays a fixed percentage of the total, a fixed dollar
// amount, or is flexible and receives an equal fraction of whatever remains
// after the fixed shares. AllocationMode is a tagged value, so a participant
// can never hold both a percentage and a dollar amount.
//
// # Relationships
//
// Models reference each other by ID strings, never by pointer. Allocations are
// derived on every query and never persisted.
package models
