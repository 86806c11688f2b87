package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/id"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type ReturnItemCommand struct {
	EquipmentID  string
	InternalID   string
	SerialNumber string
	// Condition is blank for bon_etat.
	Condition string
	Notes     string
	Photos    []string
}

type CreateReturnCommand struct {
	AllocationID    string
	Items           []ReturnItemCommand
	ReturnDate      *time.Time
	RemovedSoftware []string
	Notes           string
	ProcessedBy     string
}

// CreateReturnUseCase records equipment handed back. Each equipment takes the
// status its condition maps to and leaves the employee; the allocation is
// completed once nothing is outstanding.
type CreateReturnUseCase struct {
	allocationRepo allocation.Repository
	returnRepo     allocation.ReturnRepository
	equipmentRepo  equipment.Repository
	txManager      db.Transactor
	notifier       notification.Notifier
	logger         logger.Interface
}

func NewCreateReturnUseCase(
	allocationRepo allocation.Repository,
	returnRepo allocation.ReturnRepository,
	equipmentRepo equipment.Repository,
	txManager db.Transactor,
	notifier notification.Notifier,
	logger logger.Interface,
) *CreateReturnUseCase {
	return &CreateReturnUseCase{
		allocationRepo: allocationRepo,
		returnRepo:     returnRepo,
		equipmentRepo:  equipmentRepo,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateReturnUseCase) Execute(ctx context.Context, cmd CreateReturnCommand) (*dto.ReturnDTO, error) {
	uc.logger.Infow("executing create return use case", "allocation_id", cmd.AllocationID, "lines", len(cmd.Items))

	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError(allocation.ErrNoEquipment.Error())
	}
	conditions := make([]vo.Condition, len(cmd.Items))
	for i, item := range cmd.Items {
		if item.EquipmentID == "" {
			return nil, errors.NewValidationError("equipmentId is required for every returned line")
		}
		c, err := vo.NewCondition(strings.TrimSpace(item.Condition))
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		conditions[i] = c
	}

	reference, err := id.NewReference(id.PrefixReturn)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate return reference")
	}
	returnDate := biztime.NowUTC()
	if cmd.ReturnDate != nil && !cmd.ReturnDate.IsZero() {
		returnDate = cmd.ReturnDate.UTC()
	}

	var (
		created   *allocation.Return
		alloc     *allocation.Allocation
		completed bool
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := loadAllocation(txCtx, uc.allocationRepo, cmd.AllocationID)
		if err != nil {
			return err
		}

		known := make(map[string]allocation.Item)
		for _, item := range a.Items() {
			known[item.EquipmentID] = item
		}
		items := make([]allocation.ReturnedItem, 0, len(cmd.Items))
		ids := make([]string, 0, len(cmd.Items))
		for i, line := range cmd.Items {
			ri := allocation.ReturnedItem{
				EquipmentID:  line.EquipmentID,
				InternalID:   line.InternalID,
				SerialNumber: line.SerialNumber,
				Condition:    conditions[i],
				Notes:        strings.TrimSpace(line.Notes),
				Photos:       line.Photos,
			}
			if orig, ok := known[line.EquipmentID]; ok {
				if ri.InternalID == "" {
					ri.InternalID = orig.InternalID
				}
				if ri.SerialNumber == "" {
					ri.SerialNumber = orig.SerialNumber
				}
			}
			items = append(items, ri)
			ids = append(ids, line.EquipmentID)
		}

		r, err := allocation.NewReturn(reference, a.ID(), a.UserID(), items, returnDate, cmd.RemovedSoftware, cmd.ProcessedBy, cmd.Notes)
		if err != nil {
			return domainError(err)
		}
		done, err := a.RegisterReturn(ids, returnDate)
		if err != nil {
			return domainError(err)
		}

		list, err := uc.equipmentRepo.GetByIDs(txCtx, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]*equipment.Equipment, len(list))
		for _, e := range list {
			byID[e.ID()] = e
		}
		for i, equipmentID := range ids {
			e, ok := byID[equipmentID]
			if !ok {
				return errors.NewNotFoundError("equipment not found", equipmentID)
			}
			if err := e.ReturnWith(conditions[i].EquipmentStatus()); err != nil {
				return domainError(err)
			}
			if err := uc.equipmentRepo.Update(txCtx, e); err != nil {
				return err
			}
		}

		if err := uc.allocationRepo.Update(txCtx, a); err != nil {
			return err
		}
		if err := uc.returnRepo.Create(txCtx, r); err != nil {
			return err
		}
		created, alloc, completed = r, a, done
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record return", "allocation_id", cmd.AllocationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("return recorded",
		"id", created.ID(),
		"reference", created.Reference(),
		"allocation_id", alloc.ID(),
		"allocation_completed", completed)

	if uc.notifier != nil && alloc.UserEmail() != "" {
		msg := notification.ReturnRecorded{
			To:                  alloc.UserEmail(),
			EmployeeName:        alloc.UserName(),
			Reference:           created.Reference(),
			AllocationReference: alloc.Reference(),
			ReturnDate:          created.ReturnDate(),
			Lines:               returnLines(created, alloc),
			RemovedSoftware:     created.RemovedSoftware(),
			Completed:           completed,
			Notes:               strings.TrimSpace(cmd.Notes),
		}
		sendAsync(uc.logger, "return-recorded-mail", func(ctx context.Context) error {
			return uc.notifier.ReturnRecorded(ctx, msg)
		})
	}

	result := dto.ToReturnDTO(created)
	result.AllocationCompleted = completed
	return result, nil
}

func returnLines(r *allocation.Return, a *allocation.Allocation) []notification.Line {
	delivered := make(map[string]allocation.Item)
	for _, item := range a.Items() {
		delivered[item.EquipmentID] = item
	}
	items := r.Items()
	lines := make([]notification.Line, 0, len(items))
	for _, item := range items {
		orig := delivered[item.EquipmentID]
		lines = append(lines, notification.Line{
			Type:         orig.Type,
			Brand:        orig.Brand,
			Model:        orig.Model,
			SerialNumber: item.SerialNumber,
			InternalID:   item.InternalID,
			Condition:    item.Condition.String(),
		})
	}
	return lines
}
