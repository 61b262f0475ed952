package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
	"github.com/hrmpro/hrm-backend-go/internal/fixtures"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/database"
)

func newTestRepo(t *testing.T) (hrm.DocumentRepository, *bolt.DB) {
	t.Helper()
	db, err := database.NewBoltDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDocumentRepository(db), db
}

func TestDocumentRepository_LoadEmptySlot(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, hrm.ErrDocumentNotFound)
}

func TestDocumentRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	doc := fixtures.SeedDocument()
	doc.Attendance["2026-02-20"] = map[string]hrm.AttendanceStatus{
		"EMP001": hrm.AttendancePresent,
	}
	doc.CurrentSession = &hrm.Session{
		Username:    fixtures.SuperAdminUsername,
		Role:        hrm.RoleSuperAdmin,
		DisplayName: "Nikhil",
	}

	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, doc.Employees, loaded.Employees)
	assert.Equal(t, doc.Companies, loaded.Companies)
	assert.Equal(t, doc.Attendance, loaded.Attendance)
	assert.Equal(t, doc.Counters, loaded.Counters)
	assert.Equal(t, doc.CurrentSession, loaded.CurrentSession)
	assert.True(t, doc.Employees[0].Salary.Equal(loaded.Employees[0].Salary))
}

func TestDocumentRepository_SaveOverwrites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	doc := fixtures.SeedDocument()
	require.NoError(t, repo.Save(ctx, doc))

	doc.Employees = doc.Employees[:1]
	require.NoError(t, repo.Save(ctx, doc))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Employees, 1)
}

func TestDocumentRepository_CorruptSlotTreatedAsAbsent(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	err := db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(database.StateBucket).Put([]byte("document"), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, hrm.ErrDocumentNotFound)
}
