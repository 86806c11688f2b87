package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

type SyncSchemaCommand struct {
	SchemaName     string
	ObjectTypeName string
	Limit          int
	Mapping        *jiraasset.AttributeMapping
}

// schemaRequiredFields must be given explicitly for a schema sync: nothing is detected.
var schemaRequiredFields = []jiraasset.Field{
	jiraasset.FieldSerialNumber,
	jiraasset.FieldBrand,
	jiraasset.FieldModel,
	jiraasset.FieldType,
}

// SyncSchemaUseCase syncs any object type of a schema with an explicit mapping.
type SyncSchemaUseCase struct {
	sync SyncAssetsExecutor
}

func NewSyncSchemaUseCase(sync SyncAssetsExecutor) *SyncSchemaUseCase {
	return &SyncSchemaUseCase{sync: sync}
}

func (uc *SyncSchemaUseCase) Execute(ctx context.Context, cmd SyncSchemaCommand) (*dto.SyncStatsDTO, error) {
	if strings.TrimSpace(cmd.SchemaName) == "" {
		return nil, errors.NewValidationError("schema name is required")
	}
	if cmd.Mapping == nil || !cmd.Mapping.HasRequired(schemaRequiredFields...) {
		return nil, errors.NewValidationError("attributeMapping must map serialNumberAttrId, brandAttrId, modelAttrId and typeAttrId")
	}

	autoDetect := false
	return uc.sync.Execute(ctx, SyncAssetsCommand{
		SchemaName:     cmd.SchemaName,
		ObjectTypeName: cmd.ObjectTypeName,
		Limit:          cmd.Limit,
		AutoDetect:     &autoDetect,
		Mapping:        cmd.Mapping,
		RequiredFields: schemaRequiredFields,
	})
}
