// Package model defines the database models for the content-management
// backend.
//
// This package contains GORM models that map to the PostgreSQL schema.
//
// # Core Models
//
//   - Account: a registered identity capable of authenticating
//   - Session: server-issued proof of authentication, keyed by opaque token
//   - Group: a tenant boundary owning content and memberships
//   - Member: the join record granting an account rights within a group
//
// # Content Models
//
//   - Article: blog-style posts with a publish flag and read counter
//   - Page: named pages addressable by unique link
//   - Comment: per-article comments, anonymous or authenticated
//
// # Database Schema
//
// Records are related by id reference only; referential integrity is treated
// defensively and a missing referenced account or group surfaces as a
// not-found condition, never as corruption.
package model
