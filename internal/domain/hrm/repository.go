package hrm

import "context"

// DocumentRepository is the persistence adapter for the one durable slot.
// Load returns ErrDocumentNotFound when the slot is empty; a slot whose
// content fails to parse is reported the same way so the caller can fall
// back to seed data.
type DocumentRepository interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}
