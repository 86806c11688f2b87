package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

type GetWorkspaceExecutor interface {
	Execute(ctx context.Context) (*dto.WorkspaceDTO, error)
}

type GetObjectTypeAssetsExecutor interface {
	Execute(ctx context.Context, query GetObjectTypeAssetsQuery) (*dto.ObjectTypeAssetsDTO, error)
}

type SearchAssetsExecutor interface {
	Execute(ctx context.Context, query SearchAssetsQuery) (*dto.SearchResultDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error)
}

type DetectMappingExecutor interface {
	Execute(ctx context.Context, cmd DetectMappingCommand) (*jiraasset.Detection, error)
}

type SelectAssetExecutor interface {
	Execute(ctx context.Context, cmd SelectAssetCommand) (*dto.SelectionDTO, error)
}

type SyncAssetsExecutor interface {
	Execute(ctx context.Context, cmd SyncAssetsCommand) (*dto.SyncStatsDTO, error)
}

type SyncSchemaExecutor interface {
	Execute(ctx context.Context, cmd SyncSchemaCommand) (*dto.SyncStatsDTO, error)
}

// Defaults are the schema and object type used when a request names none.
type Defaults struct {
	SchemaName     string
	ObjectTypeName string
}

func (d Defaults) apply(schemaName, objectTypeName string) (string, string) {
	if schemaName == "" {
		schemaName = d.SchemaName
	}
	if objectTypeName == "" {
		objectTypeName = d.ObjectTypeName
	}
	return schemaName, objectTypeName
}
