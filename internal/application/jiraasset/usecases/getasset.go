package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetAssetQuery struct {
	AssetID string
	Mapping *jiraasset.AttributeMapping
}

type GetAssetUseCase struct {
	source jiraasset.Source
	logger logger.Interface
}

func NewGetAssetUseCase(source jiraasset.Source, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{source: source, logger: logger}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error) {
	assetID := strings.TrimSpace(query.AssetID)
	if assetID == "" {
		return nil, errors.NewValidationError("asset id is required")
	}

	asset, err := uc.source.GetObject(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to get jira asset", "asset_id", assetID, "error", err)
		return nil, upstreamError(err)
	}
	if asset == nil {
		return nil, errors.NewNotFoundError("jira asset not found", assetID)
	}

	out := &dto.AssetDTO{
		Asset:               *asset,
		AvailableAttributes: jiraasset.AvailableAttributes(asset),
	}
	if query.Mapping != nil && !query.Mapping.IsEmpty() {
		form := jiraasset.ToEquipmentFormData(asset, *query.Mapping)
		out.FormData = &form
	}
	return out, nil
}
