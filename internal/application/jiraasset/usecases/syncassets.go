package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type SyncAssetsCommand struct {
	SchemaName     string
	ObjectTypeName string
	Limit          int
	// AutoDetect allows cached or freshly detected mappings; nil means true.
	AutoDetect *bool
	Mapping    *jiraasset.AttributeMapping
	// RequiredFields must all be mapped or the sync is refused.
	RequiredFields []jiraasset.Field
}

// SyncAssetsUseCase imports the assets of one object type into the inventory.
// Matched equipment gets its Jira link and attribute snapshot refreshed, unmatched
// assets with a serial number, brand and model are created, anything ambiguous or
// incomplete is skipped. Failures on one asset are counted and do not stop the run.
type SyncAssetsUseCase struct {
	source        jiraasset.Source
	resolver      *MappingResolver
	equipmentRepo equipment.Repository
	defaults      Defaults
	logger        logger.Interface
}

func NewSyncAssetsUseCase(
	source jiraasset.Source,
	resolver *MappingResolver,
	equipmentRepo equipment.Repository,
	defaults Defaults,
	logger logger.Interface,
) *SyncAssetsUseCase {
	return &SyncAssetsUseCase{
		source:        source,
		resolver:      resolver,
		equipmentRepo: equipmentRepo,
		defaults:      defaults,
		logger:        logger,
	}
}

func (uc *SyncAssetsUseCase) Execute(ctx context.Context, cmd SyncAssetsCommand) (*dto.SyncStatsDTO, error) {
	schemaName, objectTypeName := uc.defaults.apply(cmd.SchemaName, cmd.ObjectTypeName)
	if schemaName == "" || objectTypeName == "" {
		return nil, errors.NewValidationError("schema name and object type name are required")
	}
	if cmd.Limit > constants.JiraMaxSyncLimit {
		return nil, errors.NewValidationError("limit exceeds maximum", "max 10000")
	}
	limit := cmd.Limit
	if limit <= 0 {
		limit = constants.JiraDefaultSyncLimit
	}

	uc.logger.Infow("starting jira assets sync", "schema", schemaName, "object_type", objectTypeName, "limit", limit)

	page, err := uc.source.ObjectTypeAssets(ctx, schemaName, objectTypeName, limit)
	if err != nil {
		uc.logger.Errorw("failed to read jira assets for sync", "schema", schemaName, "object_type", objectTypeName, "error", err)
		return nil, upstreamError(err)
	}

	mapping, err := uc.resolveMapping(ctx, schemaName, objectTypeName, cmd, page.Assets)
	if err != nil {
		return nil, err
	}

	stats := &dto.SyncStatsDTO{
		Total:            len(page.Assets),
		AttributeMapping: mapping.Mapping,
		MappingOrigin:    mapping.Origin,
	}
	if len(page.Assets) == 0 {
		return stats, nil
	}

	forms := make([]jiraasset.EquipmentFormData, len(page.Assets))
	for i := range page.Assets {
		forms[i] = jiraasset.ToEquipmentFormData(&page.Assets[i], mapping.Mapping)
	}

	local, err := loadCandidates(ctx, uc.equipmentRepo, forms)
	if err != nil {
		uc.logger.Errorw("failed to load local equipment for sync", "error", err)
		return nil, err
	}

	for i := range page.Assets {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		created, err := uc.syncOne(ctx, &page.Assets[i], forms[i], local, stats)
		if err != nil {
			stats.Errors++
			uc.logger.Warnw("failed to sync jira asset", "asset_id", page.Assets[i].ID, "error", err)
			continue
		}
		if created != nil {
			local = append(local, created)
		}
	}

	uc.logger.Infow("jira assets sync finished",
		"schema", schemaName,
		"object_type", objectTypeName,
		"total", stats.Total,
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors)

	return stats, nil
}

func (uc *SyncAssetsUseCase) resolveMapping(
	ctx context.Context,
	schemaName, objectTypeName string,
	cmd SyncAssetsCommand,
	assets []jiraasset.Object,
) (dto.MappingDTO, error) {
	autoDetect := cmd.AutoDetect == nil || *cmd.AutoDetect

	var mapping dto.MappingDTO
	switch {
	case cmd.Mapping != nil && !cmd.Mapping.IsEmpty():
		mapping = dto.MappingDTO{Mapping: *cmd.Mapping, Origin: dto.OriginRequest}
	case autoDetect:
		resolved, err := uc.resolver.Resolve(ctx, schemaName, objectTypeName, nil, assets)
		if err != nil {
			return dto.MappingDTO{}, err
		}
		mapping = resolved
	default:
		m, ok := uc.resolver.Configured(objectTypeName)
		if !ok {
			return dto.MappingDTO{}, errors.NewValidationError("attributeMapping is required when auto detection is disabled")
		}
		mapping = dto.MappingDTO{Mapping: m, Origin: dto.OriginConfig}
	}

	required := cmd.RequiredFields
	if len(required) == 0 {
		required = []jiraasset.Field{jiraasset.FieldSerialNumber}
	}
	if !mapping.Mapping.HasRequired(required...) {
		missing := make([]string, 0, len(required))
		for _, f := range required {
			if mapping.Mapping.Get(f) == "" {
				missing = append(missing, string(f))
			}
		}
		return dto.MappingDTO{}, errors.NewValidationError("attribute mapping is incomplete", "missing: "+strings.Join(missing, ", "))
	}
	return mapping, nil
}

// syncOne applies one asset. It returns the equipment it created, if any.
func (uc *SyncAssetsUseCase) syncOne(
	ctx context.Context,
	asset *jiraasset.Object,
	form jiraasset.EquipmentFormData,
	local []*equipment.Equipment,
	stats *dto.SyncStatsDTO,
) (*equipment.Equipment, error) {
	result := equipment.Reconcile(form, local)

	switch result.Outcome {
	case equipment.OutcomeMatched:
		e := result.Matched
		e.LinkJiraAsset(asset.ID, equipment.Snapshot(asset))
		e.FillInternalID(form.InternalID)
		if err := uc.equipmentRepo.Update(ctx, e); err != nil {
			return nil, err
		}
		stats.Updated++
		return nil, nil

	case equipment.OutcomeNew:
		if strings.TrimSpace(form.Brand) == "" || strings.TrimSpace(form.Model) == "" {
			stats.Skipped++
			uc.logger.Debugw("jira asset skipped, brand or model missing", "asset_id", asset.ID)
			return nil, nil
		}
		e, err := equipment.NewFromJira(form, equipment.Snapshot(asset))
		if err != nil {
			return nil, err
		}
		if err := uc.equipmentRepo.Create(ctx, e); err != nil {
			return nil, err
		}
		stats.Created++
		return e, nil

	default:
		stats.Skipped++
		uc.logger.Infow("ambiguous jira asset skipped",
			"asset_id", asset.ID,
			"reason", result.Reason,
			"candidates", result.Candidates)
		return nil, nil
	}
}
