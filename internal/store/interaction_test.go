package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionRepo_AppendLoadDelete(t *testing.T) {
	repo := openTestStore(t).InteractionRepo()
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	for i, kind := range []string{"question", "quiz_attempt", "question"} {
		require.NoError(t, repo.Append(ctx, InteractionRecord{
			SessionID: "alice",
			Kind:      kind,
			Payload:   []byte(`{"n":` + string(rune('0'+i)) + `}`),
			CreatedAt: at.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Append(ctx, InteractionRecord{SessionID: "bob", Kind: "question", Payload: []byte(`{}`), CreatedAt: at}))

	recs, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "quiz_attempt", recs[1].Kind)
	assert.Equal(t, `{"n":2}`, string(recs[2].Payload))
	assert.True(t, recs[1].CreatedAt.Equal(at.Add(time.Minute)))

	ids, err := repo.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, ids)

	require.NoError(t, repo.Delete(ctx, "alice"))
	require.NoError(t, repo.Delete(ctx, "nobody"))

	recs, err = repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, recs)
	bob, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bob, 1)
}
