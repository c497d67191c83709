package smt

import "errors"

// Errors returned by tree operations. All of them surface before any
// mutation is applied, so a failed call leaves the tree unchanged.
var (
	// ErrBadHashFunction is returned by constructors when the supplied
	// hash function does not produce values of the tree's representation.
	ErrBadHashFunction = errors.New("hash function check failed")
	// ErrTypeMismatch is returned when a key or value hash does not
	// belong to the tree's configured representation.
	ErrTypeMismatch = errors.New("value does not match tree representation")
	// ErrKeyTooLarge is returned when a key needs more bits than the
	// tree depth provides.
	ErrKeyTooLarge = errors.New("key does not fit into tree depth")
	// ErrReservedValue is returned by Add when the zero hash is used as
	// a value; zero marks absent entries.
	ErrReservedValue = errors.New("zero value hash is reserved")
	// ErrNotFound is returned by Delete when the key has no entry.
	ErrNotFound = errors.New("item not found")
)
