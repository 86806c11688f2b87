package usecases

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// detectionSampleSize is how many assets are fetched when detection needs samples.
// Only the first one is inspected.
const detectionSampleSize = 5

// MappingResolver picks the attribute mapping of an object type: an explicit request
// mapping first, then the configured one, then a cached detection, then a fresh
// detection which is cached.
type MappingResolver struct {
	source     jiraasset.Source
	store      jiraasset.MappingStore
	configured map[string]jiraasset.AttributeMapping
	ttl        time.Duration
	logger     logger.Interface

	// detections collapses concurrent detections of the same object type.
	detections singleflight.Group
}

func NewMappingResolver(
	source jiraasset.Source,
	store jiraasset.MappingStore,
	configured map[string]jiraasset.AttributeMapping,
	ttl time.Duration,
	logger logger.Interface,
) *MappingResolver {
	normalized := make(map[string]jiraasset.AttributeMapping, len(configured))
	for k, v := range configured {
		normalized[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &MappingResolver{
		source:     source,
		store:      store,
		configured: normalized,
		ttl:        ttl,
		logger:     logger,
	}
}

// Configured returns the mapping declared in configuration for the object type.
func (r *MappingResolver) Configured(objectTypeName string) (jiraasset.AttributeMapping, bool) {
	m, ok := r.configured[strings.ToLower(strings.TrimSpace(objectTypeName))]
	if !ok || m.IsEmpty() {
		return jiraasset.AttributeMapping{}, false
	}
	return m, true
}

// Resolve returns the mapping for the object type. samples are used for detection when
// given; otherwise a few assets are fetched. A mapping with no field at all is returned
// with OriginNone rather than an error so callers can report partial results.
func (r *MappingResolver) Resolve(
	ctx context.Context,
	schemaName, objectTypeName string,
	explicit *jiraasset.AttributeMapping,
	samples []jiraasset.Object,
) (dto.MappingDTO, error) {
	if explicit != nil && !explicit.IsEmpty() {
		return dto.MappingDTO{Mapping: *explicit, Origin: dto.OriginRequest}, nil
	}

	if m, ok := r.Configured(objectTypeName); ok {
		return dto.MappingDTO{Mapping: m, Origin: dto.OriginConfig}, nil
	}

	if cached := r.lookup(ctx, jiraasset.MappingKey(schemaName, objectTypeName)); cached != nil {
		return dto.MappingDTO{Mapping: *cached, Origin: dto.OriginCache}, nil
	}

	return r.Detect(ctx, schemaName, objectTypeName, samples)
}

// ResolveAsset returns the mapping for a single asset whose object type is known only
// by asset.ObjectTypeID. Configuration may key mappings by object type id. Detections
// are cached under the id so an asset of one type never rewrites the mapping of another;
// an asset without an object type id is detected but not cached.
func (r *MappingResolver) ResolveAsset(
	ctx context.Context,
	schemaName string,
	explicit *jiraasset.AttributeMapping,
	asset jiraasset.Object,
) (dto.MappingDTO, error) {
	if explicit != nil && !explicit.IsEmpty() {
		return dto.MappingDTO{Mapping: *explicit, Origin: dto.OriginRequest}, nil
	}

	typeID := strings.TrimSpace(asset.ObjectTypeID)
	if typeID == "" {
		detection := jiraasset.DetectMapping([]jiraasset.Object{asset})
		if detection.Mapping.IsEmpty() {
			return dto.MappingDTO{Origin: dto.OriginNone, Detection: &detection}, nil
		}
		return dto.MappingDTO{Mapping: detection.Mapping, Origin: dto.OriginDetected, Detection: &detection}, nil
	}

	if m, ok := r.Configured(typeID); ok {
		return dto.MappingDTO{Mapping: m, Origin: dto.OriginConfig}, nil
	}

	key := jiraasset.ObjectTypeIDKey(schemaName, typeID)
	if cached := r.lookup(ctx, key); cached != nil {
		return dto.MappingDTO{Mapping: *cached, Origin: dto.OriginCache}, nil
	}

	detection := jiraasset.DetectMapping([]jiraasset.Object{asset})
	if detection.Mapping.IsEmpty() {
		r.logger.Warnw("no attribute could be detected",
			"schema", schemaName,
			"object_type_id", typeID,
			"asset_id", asset.ID)
		return dto.MappingDTO{Origin: dto.OriginNone, Detection: &detection}, nil
	}

	r.remember(ctx, key, detection.Mapping)
	return dto.MappingDTO{Mapping: detection.Mapping, Origin: dto.OriginDetected, Detection: &detection}, nil
}

func (r *MappingResolver) lookup(ctx context.Context, key string) *jiraasset.AttributeMapping {
	if r.store == nil {
		return nil
	}
	cached, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warnw("failed to read cached attribute mapping", "key", key, "error", err)
		return nil
	}
	if cached == nil || cached.IsEmpty() {
		return nil
	}
	return cached
}

func (r *MappingResolver) remember(ctx context.Context, key string, mapping jiraasset.AttributeMapping) {
	if r.store == nil {
		return
	}
	if err := r.store.Set(ctx, key, mapping, r.ttl); err != nil {
		r.logger.Warnw("failed to cache attribute mapping", "key", key, "error", err)
	}
}

// Detect always runs detection and caches a non-empty result. Concurrent calls
// without samples for the same object type share one upstream fetch.
func (r *MappingResolver) Detect(
	ctx context.Context,
	schemaName, objectTypeName string,
	samples []jiraasset.Object,
) (dto.MappingDTO, error) {
	if len(samples) > 0 {
		return r.detect(ctx, schemaName, objectTypeName, samples)
	}

	key := jiraasset.MappingKey(schemaName, objectTypeName)
	v, err, _ := r.detections.Do(key, func() (any, error) {
		return r.detect(ctx, schemaName, objectTypeName, nil)
	})
	if err != nil {
		return dto.MappingDTO{}, err
	}
	return v.(dto.MappingDTO), nil
}

func (r *MappingResolver) detect(
	ctx context.Context,
	schemaName, objectTypeName string,
	samples []jiraasset.Object,
) (dto.MappingDTO, error) {
	if len(samples) == 0 {
		page, err := r.source.ObjectTypeAssets(ctx, schemaName, objectTypeName, detectionSampleSize)
		if err != nil {
			return dto.MappingDTO{}, upstreamError(err)
		}
		samples = page.Assets
	}

	detection := jiraasset.DetectMapping(samples)
	if detection.Mapping.IsEmpty() {
		r.logger.Warnw("no attribute could be detected",
			"schema", schemaName,
			"object_type", objectTypeName,
			"samples", len(samples))
		return dto.MappingDTO{Origin: dto.OriginNone, Detection: &detection}, nil
	}

	r.logger.Infow("attribute mapping detected",
		"schema", schemaName,
		"object_type", objectTypeName,
		"fields", len(detection.Detected),
		"missing", detection.Missing)

	r.remember(ctx, jiraasset.MappingKey(schemaName, objectTypeName), detection.Mapping)
	if typeID := commonObjectTypeID(samples); typeID != "" {
		r.remember(ctx, jiraasset.ObjectTypeIDKey(schemaName, typeID), detection.Mapping)
	}

	return dto.MappingDTO{Mapping: detection.Mapping, Origin: dto.OriginDetected, Detection: &detection}, nil
}

// commonObjectTypeID returns the object type id shared by every sample, or "".
func commonObjectTypeID(samples []jiraasset.Object) string {
	if len(samples) == 0 {
		return ""
	}
	typeID := strings.TrimSpace(samples[0].ObjectTypeID)
	for _, s := range samples[1:] {
		if strings.TrimSpace(s.ObjectTypeID) != typeID {
			return ""
		}
	}
	return typeID
}
