// Package storage provides the key-value text substrate the record store
// persists into. Each backend maps an entity name to one serialized payload;
// the store above it decides what that payload contains.
package storage

import (
	"fmt"
)

// Substrate is the persistence port: a flat text store addressed by key.
// Get reports ok=false for keys that were never written.
type Substrate interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Supported driver names for Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Options carries backend-specific settings for Open.
type Options struct {
	DataDir     string // file driver
	RedisURL    string // redis driver
	DatabaseURL string // postgres driver
}

// Open constructs the substrate selected by driver.
func Open(driver string, opts Options) (Substrate, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(opts.DataDir)
	case DriverRedis:
		return NewRedis(opts.RedisURL)
	case DriverPostgres:
		return NewPostgres(opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
