package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLLMEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	for _, ev := range []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", SessionID: "s1", InputTokens: 100, OutputTokens: 300, LatencyMs: 900, Success: true,
			RequestBody: "[user]\nMake a quiz", ResponseBody: `{"questions":[]}`},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "tutor", SessionID: "s1", InputTokens: 50, OutputTokens: 80, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "quiz-gen", SessionID: "s2", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, ev))
	}
}

func TestEventRepo_QueryNewestFirst(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "anthropic", all[0].Provider)
	assert.False(t, all[0].Success)
	assert.Equal(t, "rate limited", all[0].ErrorMessage)
	assert.WithinDuration(t, time.Now(), all[0].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestEventRepo_QueryFilters(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	require.NoError(t, err)
	assert.Len(t, byPurpose, 2)

	bySession, err := repo.QueryLLMEvents(ctx, QueryOpts{SessionID: "s1", After: 1})
	require.NoError(t, err)
	require.Len(t, bySession, 1)
	assert.Equal(t, "tutor", bySession[0].Purpose)

	none, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepo_Get(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	ev, err := repo.GetLLMEvent(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "[user]\nMake a quiz", ev.RequestBody)
	assert.Equal(t, `{"questions":[]}`, ev.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_Usage(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "quiz-gen", Calls: 2, InputTokens: 100, OutputTokens: 300, AvgLatencyMs: 500}, byPurpose[0])
	assert.Equal(t, "tutor", byPurpose[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1, "failed calls are not billed")
	assert.Equal(t, ModelUsage{Model: "gpt-4o-mini", Calls: 2, InputTokens: 150, OutputTokens: 380}, byModel[0])
}
