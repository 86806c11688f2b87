package usecases

import (
	"context"
	stderrors "errors"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

// domainError maps equipment rule violations to AppErrors. Anything else the
// aggregate rejects is a validation problem with the submitted data.
func domainError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, equipment.ErrAlreadyAssigned), stderrors.Is(err, equipment.ErrNotAssignable):
		return errors.NewConflictError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}

func loadEquipment(ctx context.Context, repo equipment.Repository, id string) (*equipment.Equipment, error) {
	if id == "" {
		return nil, errors.NewValidationError("equipment id is required")
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.NewNotFoundError("equipment not found", id)
	}
	return e, nil
}
