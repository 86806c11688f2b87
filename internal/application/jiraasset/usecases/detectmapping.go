package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type DetectMappingCommand struct {
	SchemaName     string
	ObjectTypeName string
}

// DetectMappingUseCase runs detection on fresh samples, bypassing configured and
// cached mappings, and refreshes the cache.
type DetectMappingUseCase struct {
	resolver *MappingResolver
	defaults Defaults
	logger   logger.Interface
}

func NewDetectMappingUseCase(resolver *MappingResolver, defaults Defaults, logger logger.Interface) *DetectMappingUseCase {
	return &DetectMappingUseCase{resolver: resolver, defaults: defaults, logger: logger}
}

func (uc *DetectMappingUseCase) Execute(ctx context.Context, cmd DetectMappingCommand) (*jiraasset.Detection, error) {
	schemaName, objectTypeName := uc.defaults.apply(cmd.SchemaName, cmd.ObjectTypeName)
	if schemaName == "" || objectTypeName == "" {
		return nil, errors.NewValidationError("schema name and object type name are required")
	}

	result, err := uc.resolver.Detect(ctx, schemaName, objectTypeName, nil)
	if err != nil {
		return nil, err
	}
	if result.Detection == nil {
		return &jiraasset.Detection{Missing: jiraasset.DetectableFields}, nil
	}
	return result.Detection, nil
}
