// Package models defines the core domain models for FarmLedger.
//
// # Models
//
//   - Item: a priced inventory good owned by one user identifier
//   - UserSettings: per-device display preferences, created on bootstrap
//   - Goal: a revenue/profit target with a deadline
//
// "Users" here are devices, not accounts: every model is scoped by an
// opaque, client-held identifier, and no model is ever shared or
// referenced across identifiers.
//
// # Design Principles
//
//  1. **Flat ownership**: models reference each other by ID strings only
//  2. **Pass-through values**: prices and quantities are stored as given;
//     negative-profit items are valid
//  3. **Append-only goals**: a new goal supersedes by insertion, never by
//     update or delete
package models
