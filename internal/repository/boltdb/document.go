package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	bolt "go.etcd.io/bbolt"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/database"
)

// stateKey is the one durable slot. There is no versioning; the store's
// account reconciliation is the only forward-compatibility mechanism.
var stateKey = []byte("document")

type DocumentRepositoryImpl struct {
	db *bolt.DB
}

func NewDocumentRepository(db *bolt.DB) hrm.DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

// Load implements hrm.DocumentRepository. An empty slot and a slot whose
// content no longer parses are both reported as hrm.ErrDocumentNotFound so
// the store falls back to seed data instead of failing startup.
func (r *DocumentRepositoryImpl) Load(ctx context.Context) (hrm.Document, error) {
	if err := ctx.Err(); err != nil {
		return hrm.Document{}, err
	}

	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(database.StateBucket).Get(stateKey)
		if value != nil {
			raw = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		return hrm.Document{}, fmt.Errorf("failed to read durable slot: %w", err)
	}

	if raw == nil {
		return hrm.Document{}, hrm.ErrDocumentNotFound
	}

	var doc hrm.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Warn("durable slot holds unparseable document, treating as absent", "error", err)
		return hrm.Document{}, hrm.ErrDocumentNotFound
	}

	return doc, nil
}

// Save implements hrm.DocumentRepository. The whole document is written in
// one transaction; callers never observe a partial write.
func (r *DocumentRepositoryImpl) Save(ctx context.Context, doc hrm.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(database.StateBucket).Put(stateKey, raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write durable slot: %w", err)
	}

	return nil
}
