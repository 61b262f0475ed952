package database

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

// StateBucket is the single bucket holding the serialized document.
var StateBucket = []byte("hrm_pro_state")

// NewBoltDB opens (creating if needed) the local state file and makes sure
// the state bucket exists.
func NewBoltDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(StateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
