package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/abhisek/smartlearn/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseJournal(t *testing.T, j Journal) {
	t.Helper()
	ctx := context.Background()
	id := uuid.NewString()

	log, err := j.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, log)

	want := []Interaction{
		NewQuestion("History", "african kingdoms", t0),
		NewQuizAttempt("History", "African History", 66.67, 300, "beginner", t0.Add(time.Minute)),
	}
	for _, in := range want {
		require.NoError(t, j.Append(ctx, id, in))
	}
	require.NoError(t, j.Append(ctx, "other-"+id, want[0]))

	got, err := j.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	st := NewStore(WithJournal(j))
	snap, err := st.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Project(want), snap.Counters)

	require.NoError(t, j.Delete(ctx, id))
	got, err = j.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, j.Delete(ctx, id))
}

func TestSQLJournal(t *testing.T) {
	db, err := store.Open(context.Background(), store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	exerciseJournal(t, NewSQLJournal(db.InteractionRepo()))
}

func TestRedisJournal(t *testing.T) {
	url := os.Getenv("SMARTLEARN_TEST_REDIS_URL")
	if url == "" {
		t.Skip("SMARTLEARN_TEST_REDIS_URL not set")
	}
	client, err := DialRedis(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	exerciseJournal(t, NewRedisJournal(client, "smartlearn-test:", time.Minute))
}

func TestDialRedisBadURL(t *testing.T) {
	_, err := DialRedis(context.Background(), "not a url")
	assert.Error(t, err)
}
