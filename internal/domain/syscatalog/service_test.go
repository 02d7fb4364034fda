package syscatalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:syscatalog_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&AIAgent{}, &LLMModel{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewAgentRepository(db), NewModelRepository(db))
}

func agentReq(id string) UpsertAgentRequest {
	return UpsertAgentRequest{
		AIAgentID:      id,
		AIAgentTitle:   "Translation Agent A1",
		AIAgentKeyword: "translation",
	}
}

func modelReq(id string) UpsertModelRequest {
	return UpsertModelRequest{
		LLMModelID:      id,
		LLMModelTitle:   "GPT-4o",
		LLMModelKeyword: "gpt-4o",
		Provider:        "openai",
	}
}

func TestUpsertAgent_CreatedUnchangedUpdated(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	out, err := svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, out)

	rows, err := svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, DefaultSortOrder, rows[0].UISortOrder)
	stampAfterCreate := rows[0].UpdatedAt

	// The identical payload is a no-op and must not advance updated_at.
	out, err = svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)
	assert.Equal(t, UpsertUnchanged, out)

	rows, err = svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].UpdatedAt.Equal(stampAfterCreate))

	changed := agentReq("agent_translation_a1")
	changed.AIAgentTitle = "Translation Agent A1 (revised)"
	out, err = svc.UpsertAgent(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, out)

	rows, err = svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Translation Agent A1 (revised)", rows[0].AIAgentTitle)
}

func TestUpsertAgent_ResurrectsDeleted(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAgent(ctx, "agent_translation_a1"))

	rows, err := svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	assert.Empty(t, rows, "deleted agent must drop out of listings")

	// Even a byte-identical payload revives a retired row.
	out, err := svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, out)

	rows, err = svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCreateAgent_StrictConflict(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAgent(ctx, agentReq("agent_proofreading_a1")))
	assert.ErrorIs(t, svc.CreateAgent(ctx, agentReq("agent_proofreading_a1")), ErrAgentExists)

	require.NoError(t, svc.DeleteAgent(ctx, "agent_proofreading_a1"))

	revived := agentReq("agent_proofreading_a1")
	revived.AIAgentKeyword = "proofreading"
	require.NoError(t, svc.CreateAgent(ctx, revived))

	rows, err := svc.ListAgents(ctx, "agent_proofreading_a1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "proofreading", rows[0].AIAgentKeyword)
}

func TestUpdateAgent_PartialAndMissing(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)

	keyword := "post-editing"
	require.NoError(t, svc.UpdateAgent(ctx, "agent_translation_a1", UpdateAgentRequest{AIAgentKeyword: &keyword}))

	rows, err := svc.ListAgents(ctx, "agent_translation_a1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "post-editing", rows[0].AIAgentKeyword)
	assert.Equal(t, "Translation Agent A1", rows[0].AIAgentTitle)

	assert.ErrorIs(t, svc.UpdateAgent(ctx, "agent_nope", UpdateAgentRequest{AIAgentKeyword: &keyword}), ErrAgentNotFound)

	// Empty update still 404s on a retired row.
	require.NoError(t, svc.DeleteAgent(ctx, "agent_translation_a1"))
	assert.ErrorIs(t, svc.UpdateAgent(ctx, "agent_translation_a1", UpdateAgentRequest{}), ErrAgentNotFound)
}

func TestDeleteAgent_Twice(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.UpsertAgent(ctx, agentReq("agent_translation_a1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAgent(ctx, "agent_translation_a1"))
	assert.ErrorIs(t, svc.DeleteAgent(ctx, "agent_translation_a1"), ErrAgentNotFound)
}

func TestListAgents_SortOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, a := range []struct{ id, sort string }{
		{"agent_c", "B0"},
		{"agent_a", "A0"},
		{"agent_b", "A1"},
	} {
		req := agentReq(a.id)
		req.UISortOrder = a.sort
		_, err := svc.UpsertAgent(ctx, req)
		require.NoError(t, err)
	}

	rows, err := svc.ListAgents(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "agent_a", rows[0].AIAgentID)
	assert.Equal(t, "agent_b", rows[1].AIAgentID)
	assert.Equal(t, "agent_c", rows[2].AIAgentID)
}

func TestUpsertModel_Lifecycle(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	out, err := svc.UpsertModel(ctx, modelReq("gpt-4o"))
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, out)

	out, err = svc.UpsertModel(ctx, modelReq("gpt-4o"))
	require.NoError(t, err)
	assert.Equal(t, UpsertUnchanged, out)

	changed := modelReq("gpt-4o")
	changed.Provider = "azure-openai"
	out, err = svc.UpsertModel(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, out)

	rows, err := svc.ListModels(ctx, "gpt-4o")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "azure-openai", rows[0].Provider)
}

func TestCreateModel_StrictConflict(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateModel(ctx, modelReq("claude-3-5-sonnet")))
	assert.ErrorIs(t, svc.CreateModel(ctx, modelReq("claude-3-5-sonnet")), ErrModelExists)

	require.NoError(t, svc.DeleteModel(ctx, "claude-3-5-sonnet"))
	require.NoError(t, svc.CreateModel(ctx, modelReq("claude-3-5-sonnet")))
}

func TestUpdateModel_Missing(t *testing.T) {
	svc := setupTestService(t)

	provider := "google"
	err := svc.UpdateModel(context.Background(), "gemini-nope", UpdateModelRequest{Provider: &provider})
	assert.ErrorIs(t, err, ErrModelNotFound)
}
