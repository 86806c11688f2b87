package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetObjectTypeAssetsQuery struct {
	SchemaName     string
	ObjectTypeName string
	Limit          int
}

// GetObjectTypeAssetsUseCase lists the assets of an object type together with the
// attribute mapping that applies to them.
type GetObjectTypeAssetsUseCase struct {
	source   jiraasset.Source
	resolver *MappingResolver
	defaults Defaults
	logger   logger.Interface
}

func NewGetObjectTypeAssetsUseCase(
	source jiraasset.Source,
	resolver *MappingResolver,
	defaults Defaults,
	logger logger.Interface,
) *GetObjectTypeAssetsUseCase {
	return &GetObjectTypeAssetsUseCase{
		source:   source,
		resolver: resolver,
		defaults: defaults,
		logger:   logger,
	}
}

func (uc *GetObjectTypeAssetsUseCase) Execute(ctx context.Context, query GetObjectTypeAssetsQuery) (*dto.ObjectTypeAssetsDTO, error) {
	schemaName, objectTypeName := uc.defaults.apply(query.SchemaName, query.ObjectTypeName)
	if schemaName == "" || objectTypeName == "" {
		return nil, errors.NewValidationError("schema name and object type name are required")
	}

	limit := clampLimit(query.Limit, constants.JiraDefaultSearchLimit)
	page, err := uc.source.ObjectTypeAssets(ctx, schemaName, objectTypeName, limit)
	if err != nil {
		uc.logger.Errorw("failed to list object type assets", "schema", schemaName, "object_type", objectTypeName, "error", err)
		return nil, upstreamError(err)
	}

	mapping, err := uc.resolver.Resolve(ctx, schemaName, objectTypeName, nil, page.Assets)
	if err != nil {
		return nil, err
	}

	return &dto.ObjectTypeAssetsDTO{
		SchemaName:     schemaName,
		ObjectTypeName: objectTypeName,
		Assets:         nonNilAssets(page.Assets),
		Total:          page.Total,
		Mapping:        mapping,
	}, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > constants.JiraMaxSearchLimit {
		return constants.JiraMaxSearchLimit
	}
	return limit
}

func nonNilAssets(assets []jiraasset.Object) []jiraasset.Object {
	if assets == nil {
		return []jiraasset.Object{}
	}
	return assets
}
