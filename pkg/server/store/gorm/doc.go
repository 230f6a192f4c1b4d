// Package gorm implements the store interfaces using GORM against
// PostgreSQL.
//
// Each store holds a *gorm.DB and translates gorm.ErrRecordNotFound into
// store.ErrNotFound so callers never depend on GORM directly.
package gorm
