package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type SearchAssetsQuery struct {
	ObjectTypeID string
	Query        string
	Limit        int
	// Mapping restricts the text match to the mapped fields; nil searches every attribute.
	Mapping *jiraasset.AttributeMapping
}

// SearchAssetsUseCase reads up to Limit assets of an object type and filters them locally.
type SearchAssetsUseCase struct {
	source jiraasset.Source
	logger logger.Interface
}

func NewSearchAssetsUseCase(source jiraasset.Source, logger logger.Interface) *SearchAssetsUseCase {
	return &SearchAssetsUseCase{source: source, logger: logger}
}

func (uc *SearchAssetsUseCase) Execute(ctx context.Context, query SearchAssetsQuery) (*dto.SearchResultDTO, error) {
	objectTypeID := strings.TrimSpace(query.ObjectTypeID)
	if objectTypeID == "" {
		return nil, errors.NewValidationError("objectTypeId is required")
	}
	if query.Limit > constants.JiraMaxSearchLimit {
		return nil, errors.NewValidationError("limit exceeds maximum", "max 1000")
	}
	limit := clampLimit(query.Limit, constants.JiraDefaultSearchLimit)

	assets, err := uc.source.SearchByObjectType(ctx, objectTypeID, "", limit)
	if err != nil {
		uc.logger.Errorw("failed to search jira assets", "object_type_id", objectTypeID, "error", err)
		return nil, upstreamError(err)
	}

	mapping := query.Mapping
	if mapping != nil && mapping.IsEmpty() {
		mapping = nil
	}
	filtered := nonNilAssets(jiraasset.FilterAssets(assets, query.Query, mapping))

	uc.logger.Debugw("jira assets searched",
		"object_type_id", objectTypeID,
		"fetched", len(assets),
		"matched", len(filtered))

	return &dto.SearchResultDTO{Assets: filtered, Total: len(filtered)}, nil
}
