package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/smartlearn/internal/store"
	"github.com/redis/go-redis/v9"
)

// SQLJournal keeps interaction logs in the store's interactions table.
type SQLJournal struct {
	repo *store.InteractionRepo
}

func NewSQLJournal(repo *store.InteractionRepo) *SQLJournal {
	return &SQLJournal{repo: repo}
}

func (j *SQLJournal) Load(ctx context.Context, sessionID string) ([]Interaction, error) {
	recs, err := j.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]Interaction, 0, len(recs))
	for _, rec := range recs {
		var in Interaction
		if err := json.Unmarshal(rec.Payload, &in); err != nil {
			return nil, fmt.Errorf("decode interaction %d: %w", rec.Sequence, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func (j *SQLJournal) Append(ctx context.Context, sessionID string, in Interaction) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}
	return j.repo.Append(ctx, store.InteractionRecord{
		SessionID: sessionID,
		Kind:      string(in.Kind),
		Payload:   payload,
		CreatedAt: in.Timestamp,
	})
}

func (j *SQLJournal) Delete(ctx context.Context, sessionID string) error {
	return j.repo.Delete(ctx, sessionID)
}

// RedisJournal keeps each session's log in a Redis list. A positive TTL
// is refreshed on every append.
type RedisJournal struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisJournal(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisJournal {
	if prefix == "" {
		prefix = "smartlearn:session:"
	}
	return &RedisJournal{client: client, prefix: prefix, ttl: ttl}
}

func (j *RedisJournal) key(sessionID string) string {
	return j.prefix + sessionID + ":interactions"
}

func (j *RedisJournal) Load(ctx context.Context, sessionID string) ([]Interaction, error) {
	vals, err := j.client.LRange(ctx, j.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	out := make([]Interaction, 0, len(vals))
	for i, v := range vals {
		var in Interaction
		if err := json.Unmarshal([]byte(v), &in); err != nil {
			return nil, fmt.Errorf("decode interaction %d: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func (j *RedisJournal) Append(ctx context.Context, sessionID string, in Interaction) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}
	key := j.key(sessionID)
	pipe := j.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	if j.ttl > 0 {
		pipe.Expire(ctx, key, j.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	return nil
}

func (j *RedisJournal) Delete(ctx context.Context, sessionID string) error {
	if err := j.client.Del(ctx, j.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// DialRedis parses a redis:// URL and pings the server.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
