package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"aurorah/internal/domain/filenode"
	"aurorah/internal/domain/original"
	"aurorah/internal/domain/proofreading"
	"aurorah/internal/domain/task"
	"aurorah/internal/domain/translation"
	"aurorah/internal/pkg/clock"
)

const testWindow = 20 * time.Minute

type testEnv struct {
	svc    *Service
	db     *gorm.DB
	clk    *clock.StubClock
	fileID uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:history_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	err = db.AutoMigrate(
		&filenode.FileNode{},
		&original.Original{},
		&translation.Translation{},
		&proofreading.Proofreading{},
		&task.Task{},
		&EditHistory{},
		&Checkpoint{},
	)
	if err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	fileRepo := filenode.NewRepository(db)
	ids := &clock.StubIDGenerator{}
	f, err := filenode.NewService(fileRepo, ids).Create(context.Background(), filenode.CreateFileNodeRequest{
		OwnerID:  "owner-1",
		FileName: "tracked.txt",
		FileType: filenode.TypeFile,
	})
	if err != nil {
		t.Fatalf("create file: %v", err)
	}

	clk := clock.FixedClock()
	return &testEnv{
		svc:    NewService(NewRepository(db), fileRepo, clk, ids, testWindow),
		db:     db,
		clk:    clk,
		fileID: f.FileID,
	}
}

func (e *testEnv) recordEdit(t *testing.T, marker int) *RecordEditResult {
	t.Helper()
	res, err := e.svc.RecordEdit(context.Background(), RecordEditRequest{
		FileID:       e.fileID,
		TargetType:   TargetOriginal,
		TargetID:     uuid.New(),
		MarkerNumber: marker,
		EditorID:     uuid.New(),
		TextAfter:    fmt.Sprintf("segment %d rewritten", marker),
	})
	if err != nil {
		t.Fatalf("RecordEdit returned error: %v", err)
	}
	return res
}

func TestRecordEdit_FirstEditCutsCheckpoint(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	res := e.recordEdit(t, 1)
	require.NotNil(t, res.CheckpointID, "first edit must cut a checkpoint")

	cps, err := e.svc.ListCheckpoints(ctx, e.fileID, nil)
	require.NoError(t, err)
	require.Len(t, cps, 1)
	assert.Equal(t, *res.CheckpointID, cps[0].CheckpointID)
	assert.Equal(t, res.HistoryID, cps[0].HistoryID)
}

func TestRecordEdit_WindowSuppressesCheckpoints(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	first := e.recordEdit(t, 1)
	require.NotNil(t, first.CheckpointID)

	e.clk.Advance(5 * time.Minute)
	second := e.recordEdit(t, 2)
	assert.Nil(t, second.CheckpointID, "edit inside the window rides without a checkpoint")

	e.clk.Advance(16 * time.Minute)
	third := e.recordEdit(t, 3)
	require.NotNil(t, third.CheckpointID, "edit past the window cuts the next checkpoint")

	cps, err := e.svc.ListCheckpoints(ctx, e.fileID, nil)
	require.NoError(t, err)
	assert.Len(t, cps, 2)

	entries, err := e.svc.ListHistory(ctx, e.fileID, HistoryFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 3, "every edit lands in the log regardless of checkpoints")
}

func TestRecordEdit_SnapshotCapturesOverlays(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	overlayO := datatypes.JSON(`{"segments":[{"sid":1,"text":"edited source"}]}`)
	overlayT := datatypes.JSON(`{"segments":[{"sid":1,"text":"edited translation"}]}`)
	overlayP := datatypes.JSON(`{"segments":[{"sid":1,"text":"reviewed"}]}`)

	o := &original.Original{
		OriginalID:           uuid.New(),
		FileID:               e.fileID,
		OriginalText:         datatypes.JSON(`{"segments":[]}`),
		OriginalTextModified: overlayO,
	}
	require.NoError(t, e.db.Create(o).Error)

	tr := &translation.Translation{
		TranslationID:          uuid.New(),
		FileID:                 e.fileID,
		FilePresetID:           uuid.New(),
		AssigneeID:             uuid.New(),
		TranslatedTextModified: overlayT,
	}
	require.NoError(t, e.db.Create(tr).Error)

	pr := &proofreading.Proofreading{
		ProofreadingID:  uuid.New(),
		FileID:          e.fileID,
		ProofreadedText: overlayP,
	}
	require.NoError(t, e.db.Create(pr).Error)

	require.NoError(t, e.db.Create(&task.Task{
		FileID:           e.fileID,
		OriginalID:       o.OriginalID,
		TranslationID1st: &tr.TranslationID,
		ProofreadingID:   &pr.ProofreadingID,
	}).Error)

	res := e.recordEdit(t, 1)
	require.NotNil(t, res.CheckpointID)

	cps, err := e.svc.ListCheckpoints(ctx, e.fileID, res.CheckpointID)
	require.NoError(t, err)
	require.Len(t, cps, 1)
	assert.JSONEq(t, string(overlayO), string(cps[0].OriginalTextModified))
	assert.JSONEq(t, string(overlayT), string(cps[0].TranslatedTextModified))
	assert.JSONEq(t, string(overlayP), string(cps[0].ProofreadedText))
}

func TestRecordEdit_NoTaskSnapshotsEmpty(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	res := e.recordEdit(t, 1)
	require.NotNil(t, res.CheckpointID)

	cps, err := e.svc.ListCheckpoints(ctx, e.fileID, res.CheckpointID)
	require.NoError(t, err)
	require.Len(t, cps, 1)
	assert.Empty(t, cps[0].OriginalTextModified)
	assert.Empty(t, cps[0].TranslatedTextModified)
	assert.Empty(t, cps[0].ProofreadedText)
}

func TestRecordEdit_FileMissing(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.svc.RecordEdit(context.Background(), RecordEditRequest{
		FileID:       uuid.New(),
		TargetType:   TargetOriginal,
		TargetID:     uuid.New(),
		MarkerNumber: 1,
		EditorID:     uuid.New(),
		TextAfter:    "x",
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestListHistory_Filters(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	targetA := uuid.New()
	targetB := uuid.New()
	editor := uuid.New()

	record := func(targetType string, targetID uuid.UUID, marker int) {
		_, err := e.svc.RecordEdit(ctx, RecordEditRequest{
			FileID:       e.fileID,
			TargetType:   targetType,
			TargetID:     targetID,
			MarkerNumber: marker,
			EditorID:     editor,
			TextAfter:    "changed",
		})
		require.NoError(t, err)
		e.clk.Advance(time.Minute)
	}

	record(TargetOriginal, targetA, 1)
	record(TargetTranslation, targetB, 2)
	record(TargetOriginal, targetA, 2)

	all, err := e.svc.ListHistory(ctx, e.fileID, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[2].CreatedAt), "newest first")

	originals, err := e.svc.ListHistory(ctx, e.fileID, HistoryFilter{TargetType: TargetOriginal})
	require.NoError(t, err)
	assert.Len(t, originals, 2)

	marker := 2
	marked, err := e.svc.ListHistory(ctx, e.fileID, HistoryFilter{MarkerNumber: &marker})
	require.NoError(t, err)
	assert.Len(t, marked, 2)

	both, err := e.svc.ListHistory(ctx, e.fileID, HistoryFilter{TargetType: TargetOriginal, MarkerNumber: &marker})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, targetA, both[0].TargetID)
}

func TestCreateCheckpoint_Manual(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	res := e.recordEdit(t, 1)

	payload := datatypes.JSON(`{"segments":[{"sid":1,"text":"pinned"}]}`)
	cp, err := e.svc.CreateCheckpoint(ctx, CreateCheckpointRequest{
		FileID:               e.fileID,
		HistoryID:            res.HistoryID,
		OriginalTextModified: payload,
	})
	require.NoError(t, err)
	assert.Equal(t, res.HistoryID, cp.HistoryID)
	assert.JSONEq(t, string(payload), string(cp.OriginalTextModified))

	_, err = e.svc.CreateCheckpoint(ctx, CreateCheckpointRequest{
		FileID:    e.fileID,
		HistoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrHistoryNotFound)

	_, err = e.svc.CreateCheckpoint(ctx, CreateCheckpointRequest{
		FileID:    uuid.New(),
		HistoryID: res.HistoryID,
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestListCheckpoints_FilterByID(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	first := e.recordEdit(t, 1)
	e.clk.Advance(testWindow + time.Minute)
	second := e.recordEdit(t, 2)
	require.NotNil(t, first.CheckpointID)
	require.NotNil(t, second.CheckpointID)

	cps, err := e.svc.ListCheckpoints(ctx, e.fileID, second.CheckpointID)
	require.NoError(t, err)
	require.Len(t, cps, 1)
	assert.Equal(t, *second.CheckpointID, cps[0].CheckpointID)
}
