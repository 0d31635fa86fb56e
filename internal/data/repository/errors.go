package repository

import "fmt"

// StorageError wraps any failure from the storage engine during a read or
// write. Callers surface it as an opaque failure and never retry: retrying
// an append with freshly generated keys would produce a duplicate event, not
// an overwrite.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
