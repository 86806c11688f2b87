package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type SelectAssetCommand struct {
	AssetID        string
	ObjectTypeID   string
	SchemaName     string
	ObjectTypeName string
	Mapping        *jiraasset.AttributeMapping
}

// SelectAssetUseCase turns a picked Jira asset into an allocation line, reusing the
// local equipment when it is already in the inventory.
type SelectAssetUseCase struct {
	source        jiraasset.Source
	resolver      *MappingResolver
	equipmentRepo equipment.Repository
	defaults      Defaults
	logger        logger.Interface
}

func NewSelectAssetUseCase(
	source jiraasset.Source,
	resolver *MappingResolver,
	equipmentRepo equipment.Repository,
	defaults Defaults,
	logger logger.Interface,
) *SelectAssetUseCase {
	return &SelectAssetUseCase{
		source:        source,
		resolver:      resolver,
		equipmentRepo: equipmentRepo,
		defaults:      defaults,
		logger:        logger,
	}
}

func (uc *SelectAssetUseCase) Execute(ctx context.Context, cmd SelectAssetCommand) (*dto.SelectionDTO, error) {
	assetID := strings.TrimSpace(cmd.AssetID)
	if assetID == "" {
		return nil, errors.NewValidationError("assetId is required")
	}

	asset, err := uc.source.GetObject(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to get jira asset", "asset_id", assetID, "error", err)
		return nil, upstreamError(err)
	}
	if asset == nil {
		return nil, errors.NewNotFoundError("jira asset not found", assetID)
	}
	if cmd.ObjectTypeID != "" && asset.ObjectTypeID != "" && cmd.ObjectTypeID != asset.ObjectTypeID {
		return nil, errors.NewValidationError("asset does not belong to the object type", cmd.ObjectTypeID)
	}

	mapping, err := uc.resolveMapping(ctx, cmd, asset)
	if err != nil {
		return nil, err
	}

	form := jiraasset.ToEquipmentFormData(asset, mapping.Mapping)
	candidates, err := loadCandidates(ctx, uc.equipmentRepo, []jiraasset.EquipmentFormData{form})
	if err != nil {
		uc.logger.Errorw("failed to load reconciliation candidates", "asset_id", assetID, "error", err)
		return nil, err
	}

	result := equipment.Reconcile(form, candidates)
	uc.logger.Infow("jira asset reconciled",
		"asset_id", assetID,
		"outcome", result.Outcome,
		"reason", result.Reason,
		"mapping_origin", mapping.Origin)

	return dto.ToSelectionDTO(result, form, mapping), nil
}

// resolveMapping resolves by name only when the request names the object type. The
// default object type is not assumed: the asset is resolved by its own object type id.
func (uc *SelectAssetUseCase) resolveMapping(ctx context.Context, cmd SelectAssetCommand, asset *jiraasset.Object) (dto.MappingDTO, error) {
	schemaName, _ := uc.defaults.apply(cmd.SchemaName, "")
	if objectTypeName := strings.TrimSpace(cmd.ObjectTypeName); objectTypeName != "" {
		return uc.resolver.Resolve(ctx, schemaName, objectTypeName, cmd.Mapping, []jiraasset.Object{*asset})
	}
	return uc.resolver.ResolveAsset(ctx, schemaName, cmd.Mapping, *asset)
}
