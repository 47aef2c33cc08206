package implementation

import (
	"context"
	"testing"

	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.SessionSnapshot{}, &model.SavedDocument{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionSnapshotRepository(newTestDB(t))

	state := entity.NewSessionState()
	state.Title = "API Gateway"
	state.Versions = []entity.DocumentVersion{{Content: "# Doc", Timestamp: 1700000000000, Version: 1}}
	state.CurrentVersionIndex = 0

	assert.NoError(t, repo.Save(ctx, "document-storage", state))

	loaded, err := repo.Load(ctx, "document-storage")
	assert.NoError(t, err)
	assert.Equal(t, "API Gateway", loaded.Title)
	assert.Len(t, loaded.Versions, 1)
	assert.Equal(t, "# Doc", loaded.Versions[0].Content)
	assert.Equal(t, 0, loaded.CurrentVersionIndex)
}

func TestSessionSnapshotSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionSnapshotRepository(newTestDB(t))

	first := entity.NewSessionState()
	first.Title = "before"
	assert.NoError(t, repo.Save(ctx, "document-storage", first))

	second := entity.NewSessionState()
	second.Title = "after"
	assert.NoError(t, repo.Save(ctx, "document-storage", second))

	loaded, err := repo.Load(ctx, "document-storage")
	assert.NoError(t, err)
	assert.Equal(t, "after", loaded.Title)
}

func TestSessionSnapshotSlotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionSnapshotRepository(newTestDB(t))

	state := entity.NewSessionState()
	state.Title = "mine"
	assert.NoError(t, repo.Save(ctx, "document-storage", state))

	other, err := repo.Load(ctx, "another-slot")
	assert.NoError(t, err)
	assert.Nil(t, other)

	assert.NoError(t, repo.Delete(ctx, "another-slot"))
	loaded, err := repo.Load(ctx, "document-storage")
	assert.NoError(t, err)
	assert.Equal(t, "mine", loaded.Title)
}

func TestSessionSnapshotLoadMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionSnapshotRepository(newTestDB(t))

	loaded, err := repo.Load(ctx, "document-storage")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionSnapshotDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionSnapshotRepository(newTestDB(t))

	state := entity.NewSessionState()
	assert.NoError(t, repo.Save(ctx, "document-storage", state))
	assert.NoError(t, repo.Delete(ctx, "document-storage"))

	loaded, err := repo.Load(ctx, "document-storage")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
