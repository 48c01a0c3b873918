package models

// DocumentCounter is the dedicated counter row backing number allocation for
// one document series. LastValue is advanced with a single atomic
// read-modify-write so concurrent allocators never observe the same value.
type DocumentCounter struct {
	Kind      DocumentKind `db:"kind"`
	LastValue int64        `db:"last_value"`
}
