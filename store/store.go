// Package store is the access layer: thin filter-and-query wrappers over the
// database handle, one function per entity per operation. Lookups return
// (nil, nil) when the row is absent; translating absence into a NOT_FOUND
// response is the controller's job. Storage errors are never swallowed, on
// reads or writes.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}
