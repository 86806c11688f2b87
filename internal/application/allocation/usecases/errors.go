package usecases

import (
	"context"
	stderrors "errors"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

// domainError maps allocation and equipment rule violations to AppErrors.
func domainError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, allocation.ErrAlreadySigned),
		stderrors.Is(err, allocation.ErrNotActive),
		stderrors.Is(err, allocation.ErrInvalidTransition),
		stderrors.Is(err, equipment.ErrAlreadyAssigned),
		stderrors.Is(err, equipment.ErrNotAssignable):
		return errors.NewConflictError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}

func loadAllocation(ctx context.Context, repo allocation.Repository, id string) (*allocation.Allocation, error) {
	if id == "" {
		return nil, errors.NewValidationError("allocation id is required")
	}
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("allocation not found", id)
	}
	return a, nil
}
