// Package gorm provides GORM-backed implementations of the PAM store
// interfaces.
package gorm
