package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"mockup-catalog-backend/internal/mockup"
)

const runKeyPrefix = "mockup:run:"

// RunKey is the Redis key holding a run.
func RunKey(id string) string {
	return runKeyPrefix + id
}

// NewRedisClient connects and pings.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisRunStore keeps mockup runs as JSON with a TTL.
type RedisRunStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRunStore(client *redis.Client, ttl time.Duration) *RedisRunStore {
	return &RedisRunStore{client: client, ttl: ttl}
}

func (s *RedisRunStore) SaveRun(ctx context.Context, run *mockup.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	if err := s.client.Set(ctx, RunKey(run.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun returns nil, nil for an unknown or expired run.
func (s *RedisRunStore) GetRun(ctx context.Context, id string) (*mockup.Run, error) {
	data, err := s.client.Get(ctx, RunKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}

	var run mockup.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return &run, nil
}

func (s *RedisRunStore) DeleteRun(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, RunKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	return nil
}

// MemoryRunStore is the single-process store used when Redis is not
// configured. Runs are stored as JSON so callers never share state.
type MemoryRunStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	runs map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryRunStore(ttl time.Duration) *MemoryRunStore {
	return &MemoryRunStore{
		ttl:  ttl,
		now:  time.Now,
		runs: make(map[string]memoryEntry),
	}
}

// SaveRun also drops every run that has expired.
func (s *MemoryRunStore) SaveRun(ctx context.Context, run *mockup.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, entry := range s.runs {
		if s.expired(entry, now) {
			delete(s.runs, id)
		}
	}
	s.runs[run.ID] = memoryEntry{data: data, expiresAt: now.Add(s.ttl)}
	return nil
}

// GetRun returns nil, nil for an unknown run. An expired run is removed.
func (s *MemoryRunStore) GetRun(ctx context.Context, id string) (*mockup.Run, error) {
	s.mu.RLock()
	entry, ok := s.runs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.expired(entry, s.now()) {
		s.mu.Lock()
		if current, ok := s.runs[id]; ok && s.expired(current, s.now()) {
			delete(s.runs, id)
		}
		s.mu.Unlock()
		return nil, nil
	}

	var run mockup.Run
	if err := json.Unmarshal(entry.data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return &run, nil
}

func (s *MemoryRunStore) DeleteRun(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}

// Len is the number of runs held, expired ones included until swept.
func (s *MemoryRunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

func (s *MemoryRunStore) expired(entry memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.After(entry.expiresAt)
}

// SetClock replaces the time source.
func (s *MemoryRunStore) SetClock(now func() time.Time) {
	s.now = now
}
