// Package models defines the core domain models for splitlite.
//
// # Entities
//
//   - Group: a shared expense pool, addressed by a short join code
//   - Member: a person who joined a group under a display name
//   - Expense: one payment made by a member on behalf of the group
//   - Split: one participant's share of an expense
//
// Net positions and settlement transfers are derived from a Snapshot on every
// query and are never stored.
//
// # Design Principles
//
//  1. **Exact money**: every amount is a money.Amount in minor units
//  2. **Avoid circular references**: relationships are ID strings, not pointers
//  3. **Immutable expenses**: an expense and its splits are created and deleted together
package models
