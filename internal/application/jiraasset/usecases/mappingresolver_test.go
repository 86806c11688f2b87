package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

func TestMappingResolver_Precedence(t *testing.T) {
	explicit := jiraasset.AttributeMapping{SerialNumberAttrID: "req"}
	configured := jiraasset.AttributeMapping{SerialNumberAttrID: "cfg"}
	cached := jiraasset.AttributeMapping{SerialNumberAttrID: "cache"}
	samples := []jiraasset.Object{laptop("101", "ABC123", "Latitude 5440")}

	tests := []struct {
		name       string
		explicit   *jiraasset.AttributeMapping
		configured map[string]jiraasset.AttributeMapping
		cached     *jiraasset.AttributeMapping
		wantOrigin dto.MappingOrigin
		wantSerial string
		wantStored bool
	}{
		{
			name:       "request wins",
			explicit:   &explicit,
			configured: map[string]jiraasset.AttributeMapping{"laptop": configured},
			cached:     &cached,
			wantOrigin: dto.OriginRequest,
			wantSerial: "req",
		},
		{
			name:       "empty request falls back to config, key case-insensitive",
			explicit:   &jiraasset.AttributeMapping{},
			configured: map[string]jiraasset.AttributeMapping{"LAPTOP": configured},
			cached:     &cached,
			wantOrigin: dto.OriginConfig,
			wantSerial: "cfg",
		},
		{
			name:       "cache before detection",
			cached:     &cached,
			wantOrigin: dto.OriginCache,
			wantSerial: "cache",
		},
		{
			name:       "fresh detection is stored",
			wantOrigin: dto.OriginDetected,
			wantSerial: "1",
			wantStored: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := false
			store := &mockMappingStore{
				GetFunc: func(ctx context.Context, key string) (*jiraasset.AttributeMapping, error) {
					assert.Equal(t, "Parc Informatique/Laptop", key)
					return tt.cached, nil
				},
				SetFunc: func(ctx context.Context, key string, m jiraasset.AttributeMapping, ttl time.Duration) error {
					stored = true
					assert.Equal(t, time.Hour, ttl)
					return nil
				},
			}
			r := NewMappingResolver(&mockSource{}, store, tt.configured, time.Hour, testLogger())

			got, err := r.Resolve(context.Background(), "Parc Informatique", "Laptop", tt.explicit, samples)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrigin, got.Origin)
			assert.Equal(t, tt.wantSerial, got.Mapping.SerialNumberAttrID)
			assert.Equal(t, tt.wantStored, stored)
		})
	}
}

func TestMappingResolver_DetectFetchesSamples(t *testing.T) {
	var gotLimit int
	source := &mockSource{
		ObjectTypeAssetsFunc: func(ctx context.Context, schema, objectType string, limit int) (*jiraasset.ObjectTypeAssets, error) {
			gotLimit = limit
			return &jiraasset.ObjectTypeAssets{Assets: []jiraasset.Object{laptop("1", "ABC123", "ThinkPad T14")}}, nil
		},
	}
	r := NewMappingResolver(source, nil, nil, time.Hour, testLogger())

	got, err := r.Resolve(context.Background(), "Parc Informatique", "Laptop", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, detectionSampleSize, gotLimit)
	assert.Equal(t, dto.OriginDetected, got.Origin)
	require.NotNil(t, got.Detection)
	assert.Equal(t, "4", got.Mapping.ModelAttrID)
	assert.Equal(t, "3", got.Mapping.BrandAttrID)
}

func TestMappingResolver_NothingDetected(t *testing.T) {
	setCalled := false
	store := &mockMappingStore{
		SetFunc: func(context.Context, string, jiraasset.AttributeMapping, time.Duration) error {
			setCalled = true
			return nil
		},
	}
	r := NewMappingResolver(&mockSource{}, store, nil, time.Hour, testLogger())

	got, err := r.Resolve(context.Background(), "S", "T", nil, []jiraasset.Object{{ID: "1"}})
	require.NoError(t, err)
	assert.Equal(t, dto.OriginNone, got.Origin)
	assert.True(t, got.Mapping.IsEmpty())
	assert.False(t, setCalled)
}

func TestMappingResolver_CacheFailuresAreNotFatal(t *testing.T) {
	store := &mockMappingStore{
		GetFunc: func(context.Context, string) (*jiraasset.AttributeMapping, error) {
			return nil, errors.New("redis down")
		},
		SetFunc: func(context.Context, string, jiraasset.AttributeMapping, time.Duration) error {
			return errors.New("redis down")
		},
	}
	r := NewMappingResolver(&mockSource{}, store, nil, time.Hour, testLogger())

	got, err := r.Resolve(context.Background(), "S", "T", nil, []jiraasset.Object{laptop("1", "ABC123", "XPS 13")})
	require.NoError(t, err)
	assert.Equal(t, dto.OriginDetected, got.Origin)
}

func TestMappingResolver_SourceError(t *testing.T) {
	source := &mockSource{
		ObjectTypeAssetsFunc: func(context.Context, string, string, int) (*jiraasset.ObjectTypeAssets, error) {
			return nil, errors.New("401 unauthorized")
		},
	}
	r := NewMappingResolver(source, nil, nil, time.Hour, testLogger())

	_, err := r.Detect(context.Background(), "S", "T", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream_error")
}

func TestMappingResolver_ConcurrentDetectionsShareFetch(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	source := &mockSource{
		ObjectTypeAssetsFunc: func(ctx context.Context, schema, objectType string, limit int) (*jiraasset.ObjectTypeAssets, error) {
			if calls.Add(1) == 1 {
				close(entered)
			}
			<-release
			return &jiraasset.ObjectTypeAssets{Assets: []jiraasset.Object{laptop("1", "ABC123", "ThinkPad T14")}}, nil
		},
	}
	r := NewMappingResolver(source, nil, nil, time.Hour, testLogger())

	const workers = 5
	var wg sync.WaitGroup
	results := make([]dto.MappingDTO, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := r.Detect(context.Background(), "Parc Informatique", "Laptop", nil)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, got := range results {
		assert.Equal(t, dto.OriginDetected, got.Origin)
		assert.Equal(t, "1", got.Mapping.SerialNumberAttrID)
	}
}
