package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// OpenDB opens the Badger database at path with the options the
// application uses everywhere.
func OpenDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	return badger.Open(opts)
}
