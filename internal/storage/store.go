// Package storage defines the key/value persistence contract the registry
// and session store are built on, plus the SQLite implementation.
package storage

import (
	"strings"
	"time"
)

// Key namespaces. Members live under a single key holding a JSON array;
// each service session is one key combining date and service type.
const (
	MembersKey    = "gbc_members"
	ServicePrefix = "gbc_service_"
)

// Store is a generic key/value text store. Every Set is an atomic
// overwrite of one key's value; there is no partial write.
type Store interface {
	// Get returns the value at key, reporting whether it exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, overwriting any prior value.
	Set(key, value string) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys enumerates every stored key.
	Keys() ([]string, error)
	Close() error
}

// ServiceKey builds the composite key for a session record.
func ServiceKey(date, serviceType string) string {
	return ServicePrefix + date + "_" + serviceType
}

// ParseServiceKey splits a composite session key back into date and
// service type. The date is always the first ten characters in
// YYYY-MM-DD form; everything after the single separator is the service
// type verbatim — service types may legitimately contain the separator
// character, so no further splitting happens.
func ParseServiceKey(key string) (date, serviceType string, ok bool) {
	rest, found := strings.CutPrefix(key, ServicePrefix)
	if !found || len(rest) < 12 || rest[10] != '_' {
		return "", "", false
	}
	date = rest[:10]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", "", false
	}
	return date, rest[11:], true
}
