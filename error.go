package bptree

import "github.com/cockroachdb/errors"

var (
	// ErrKeyNotFound is returned by Get and Delete on a miss. A miss is a
	// normal outcome, not a structural fault.
	ErrKeyNotFound = errors.New("key not found")
)
