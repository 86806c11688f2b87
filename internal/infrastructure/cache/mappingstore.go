package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

const MappingKeyPrefix = "dotations:jira:mapping:"

// RedisMappingStore caches detected attribute mappings per object type.
type RedisMappingStore struct {
	client *redis.Client
	prefix string
}

var _ jiraasset.MappingStore = (*RedisMappingStore)(nil)

func NewRedisMappingStore(client *redis.Client) *RedisMappingStore {
	return &RedisMappingStore{
		client: client,
		prefix: MappingKeyPrefix,
	}
}

// Get returns (nil, nil) when nothing is cached for key.
func (s *RedisMappingStore) Get(ctx context.Context, key string) (*jiraasset.AttributeMapping, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mapping from redis: %w", err)
	}

	var mapping jiraasset.AttributeMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mapping: %w", err)
	}
	return &mapping, nil
}

func (s *RedisMappingStore) Set(ctx context.Context, key string, mapping jiraasset.AttributeMapping, ttl time.Duration) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store mapping in redis: %w", err)
	}
	return nil
}

func (s *RedisMappingStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete mapping from redis: %w", err)
	}
	return nil
}

// memoryMappingCapacity bounds the in-process store; there is one entry per object type.
const memoryMappingCapacity = 256

// MemoryMappingStore is the in-process store used when redis is disabled. Entries
// expire after the ttl given to NewMemoryMappingStore, a ttl <= 0 keeps them until
// Delete or eviction.
type MemoryMappingStore struct {
	entries *expirable.LRU[string, jiraasset.AttributeMapping]
}

var _ jiraasset.MappingStore = (*MemoryMappingStore)(nil)

func NewMemoryMappingStore(ttl time.Duration) *MemoryMappingStore {
	return &MemoryMappingStore{
		entries: expirable.NewLRU[string, jiraasset.AttributeMapping](memoryMappingCapacity, nil, ttl),
	}
}

func (s *MemoryMappingStore) Get(_ context.Context, key string) (*jiraasset.AttributeMapping, error) {
	mapping, ok := s.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return &mapping, nil
}

// Set stores mapping. The store has a single ttl, so the ttl argument is not used.
func (s *MemoryMappingStore) Set(_ context.Context, key string, mapping jiraasset.AttributeMapping, _ time.Duration) error {
	s.entries.Add(key, mapping)
	return nil
}

func (s *MemoryMappingStore) Delete(_ context.Context, key string) error {
	s.entries.Remove(key)
	return nil
}
