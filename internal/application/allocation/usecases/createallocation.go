package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	allocationvo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	equipmentvo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/id"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type CreateAllocationCommand struct {
	UserID             string
	Items              []allocation.ItemRequest
	DeliveryDate       *time.Time
	Accessories        []string
	AdditionalSoftware []string
	Services           []string
	Notes              string
	CreatedBy          string
}

// CreateAllocationUseCase resolves every line to a local equipment, creating the
// ones picked from Jira that are not in the inventory yet, and assigns them all to
// the employee in a single transaction.
type CreateAllocationUseCase struct {
	allocationRepo   allocation.Repository
	equipmentRepo    equipment.Repository
	employeeRepo     employee.Repository
	txManager        db.Transactor
	standardSoftware []string
	logger           logger.Interface
}

func NewCreateAllocationUseCase(
	allocationRepo allocation.Repository,
	equipmentRepo equipment.Repository,
	employeeRepo employee.Repository,
	txManager db.Transactor,
	standardSoftware []string,
	logger logger.Interface,
) *CreateAllocationUseCase {
	return &CreateAllocationUseCase{
		allocationRepo:   allocationRepo,
		equipmentRepo:    equipmentRepo,
		employeeRepo:     employeeRepo,
		txManager:        txManager,
		standardSoftware: standardSoftware,
		logger:           logger,
	}
}

func (uc *CreateAllocationUseCase) Execute(ctx context.Context, cmd CreateAllocationCommand) (*dto.AllocationDTO, error) {
	uc.logger.Infow("executing create allocation use case", "user_id", cmd.UserID, "lines", len(cmd.Items))

	if err := validateCreate(cmd); err != nil {
		return nil, err
	}

	emp, err := uc.employeeRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load employee", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if emp == nil {
		return nil, errors.NewNotFoundError("employee not found", cmd.UserID)
	}

	reference, err := id.NewReference(id.PrefixAllocation)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate allocation reference")
	}

	var deliveryDate time.Time
	if cmd.DeliveryDate != nil {
		deliveryDate = *cmd.DeliveryDate
	}

	var created *allocation.Allocation
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		resolved, err := uc.resolveLines(txCtx, cmd.Items)
		if err != nil {
			return err
		}
		if err := uc.checkNotAllocated(txCtx, resolved); err != nil {
			return err
		}

		items := make([]allocation.Item, 0, len(resolved))
		for i, e := range resolved {
			if err := e.AssignTo(emp.ID()); err != nil {
				return errors.NewConflictError("equipment cannot be allocated", e.SerialNumber()+": "+err.Error())
			}
			items = append(items, toItem(e, cmd.Items[i]))
		}

		a, err := allocation.NewAllocation(reference, emp.ID(), emp.DisplayName(), emp.Email(), items, deliveryDate,
			allocation.Extras{
				Accessories:        cmd.Accessories,
				AdditionalSoftware: cmd.AdditionalSoftware,
				StandardSoftware:   uc.standardSoftware,
				Services:           cmd.Services,
				Notes:              strings.TrimSpace(cmd.Notes),
			}, cmd.CreatedBy)
		if err != nil {
			return domainError(err)
		}

		for _, e := range resolved {
			if err := uc.equipmentRepo.Update(txCtx, e); err != nil {
				return err
			}
		}
		if err := uc.allocationRepo.Create(txCtx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create allocation", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("allocation created",
		"id", created.ID(),
		"reference", created.Reference(),
		"user_id", created.UserID(),
		"equipment_count", len(created.Items()))
	return dto.ToAllocationDTO(created), nil
}

func validateCreate(cmd CreateAllocationCommand) error {
	if strings.TrimSpace(cmd.UserID) == "" {
		return errors.NewValidationError("userId is required")
	}
	if len(cmd.Items) == 0 {
		return errors.NewValidationError(allocation.ErrNoEquipment.Error())
	}
	for _, item := range cmd.Items {
		if err := item.Validate(); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

// resolveLines returns one equipment per line, in order: by id, then by serial
// number, else a new equipment built from the line.
func (uc *CreateAllocationUseCase) resolveLines(ctx context.Context, lines []allocation.ItemRequest) ([]*equipment.Equipment, error) {
	out := make([]*equipment.Equipment, 0, len(lines))
	seen := make(map[string]bool, len(lines))

	for _, line := range lines {
		e, err := uc.resolveLine(ctx, line)
		if err != nil {
			return nil, err
		}
		if seen[e.ID()] {
			return nil, errors.NewValidationError(allocation.ErrDuplicateEquipment.Error(), e.SerialNumber())
		}
		seen[e.ID()] = true
		out = append(out, e)
	}
	return out, nil
}

func (uc *CreateAllocationUseCase) resolveLine(ctx context.Context, line allocation.ItemRequest) (*equipment.Equipment, error) {
	if line.EquipmentID != "" {
		e, err := uc.equipmentRepo.GetByID(ctx, line.EquipmentID)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, errors.NewNotFoundError("equipment not found", line.EquipmentID)
		}
		return e, nil
	}

	serial := strings.TrimSpace(line.SerialNumber)
	e, err := uc.equipmentRepo.GetBySerialNumber(ctx, serial)
	if err != nil {
		return nil, err
	}
	if e != nil {
		if line.JiraAssetID != "" && e.JiraAssetID() == "" {
			e.LinkJiraAsset(line.JiraAssetID, nil)
		}
		e.FillInternalID(line.InternalID)
		return e, nil
	}

	e, err = equipment.NewEquipment(equipmentvo.EquipmentTypeFromLabel(line.Type), line.Brand, line.Model, serial)
	if err != nil {
		return nil, errors.NewValidationError("cannot create equipment for serial "+serial, err.Error())
	}
	e.FillInternalID(line.InternalID)
	if line.JiraAssetID != "" {
		e.LinkJiraAsset(line.JiraAssetID, nil)
	}
	if err := uc.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.logger.Infow("equipment created from allocation line", "id", e.ID(), "serial_number", serial, "jira_asset_id", line.JiraAssetID)
	return e, nil
}

func (uc *CreateAllocationUseCase) checkNotAllocated(ctx context.Context, list []*equipment.Equipment) error {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID())
	}
	active, err := uc.allocationRepo.FindActiveByEquipmentIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, a := range active {
		for _, e := range list {
			if a.HasEquipment(e.ID()) {
				return errors.NewConflictError("equipment already allocated",
					e.SerialNumber()+" in "+a.Reference())
			}
		}
	}
	return nil
}

func toItem(e *equipment.Equipment, line allocation.ItemRequest) allocation.Item {
	condition, _ := allocationvo.NewCondition(line.Condition)
	return allocation.Item{
		EquipmentID:   e.ID(),
		InternalID:    e.InternalID(),
		Type:          e.Type().String(),
		Brand:         e.Brand(),
		Model:         e.Model(),
		SerialNumber:  e.SerialNumber(),
		JiraAssetID:   e.JiraAssetID(),
		DeliveredDate: line.DeliveredDate,
		Condition:     condition,
	}
}
