package jiraasset

import (
	"context"
	"time"
)

// ObjectTypeAssets is one page of assets of a schema object type.
type ObjectTypeAssets struct {
	SchemaName     string   `json:"schemaName"`
	ObjectTypeName string   `json:"objectTypeName"`
	Assets         []Object `json:"assets"`
	Total          int      `json:"total"`
}

// Source reads assets from a Jira Assets workspace.
type Source interface {
	WorkspaceID(ctx context.Context) (string, error)
	ObjectTypeAssets(ctx context.Context, schemaName, objectTypeName string, limit int) (*ObjectTypeAssets, error)
	SearchByObjectType(ctx context.Context, objectTypeID, iql string, limit int) ([]Object, error)
	GetObject(ctx context.Context, objectID string) (*Object, error)
}

// MappingStore keeps detected mappings per object type key.
type MappingStore interface {
	Get(ctx context.Context, key string) (*AttributeMapping, error)
	Set(ctx context.Context, key string, mapping AttributeMapping, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MappingKey identifies the mapping of one object type in one schema.
func MappingKey(schemaName, objectTypeName string) string {
	return schemaName + "/" + objectTypeName
}

// ObjectTypeIDKey identifies the mapping of an object type known only by its Jira id.
// It never collides with a MappingKey since object type names do not start with '#'.
func ObjectTypeIDKey(schemaName, objectTypeID string) string {
	return schemaName + "/#" + objectTypeID
}
