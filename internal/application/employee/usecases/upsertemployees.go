package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// DirectoryEntry is one account as exported by the staff directory.
type DirectoryEntry struct {
	Office365ID string
	Email       string
	DisplayName string
	Profile     employee.Profile
}

type UpsertEmployeesCommand struct {
	Entries []DirectoryEntry
}

// UpsertEmployeesUseCase creates or refreshes employees keyed by their Office 365 id.
// Entries without an id or a usable email are skipped; a failing entry does not
// stop the batch.
type UpsertEmployeesUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewUpsertEmployeesUseCase(repo employee.Repository, logger logger.Interface) *UpsertEmployeesUseCase {
	return &UpsertEmployeesUseCase{repo: repo, logger: logger}
}

func (uc *UpsertEmployeesUseCase) Execute(ctx context.Context, cmd UpsertEmployeesCommand) (*dto.UpsertResultDTO, error) {
	if len(cmd.Entries) == 0 {
		return nil, errors.NewValidationError("at least one directory entry is required")
	}

	result := &dto.UpsertResultDTO{}
	for _, entry := range cmd.Entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if strings.TrimSpace(entry.Office365ID) == "" || strings.TrimSpace(entry.Email) == "" {
			result.Skipped++
			continue
		}

		created, err := uc.upsert(ctx, entry)
		if err != nil {
			result.Errors++
			uc.logger.Warnw("failed to upsert employee", "office365_id", entry.Office365ID, "error", err)
			continue
		}
		result.Synced++
		if created {
			result.Created++
		}
	}

	uc.logger.Infow("employees upserted",
		"synced", result.Synced,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", result.Errors)
	return result, nil
}

func (uc *UpsertEmployeesUseCase) upsert(ctx context.Context, entry DirectoryEntry) (bool, error) {
	existing, err := uc.repo.GetByOffice365ID(ctx, entry.Office365ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := existing.ApplyDirectory(entry.Email, entry.DisplayName, entry.Profile); err != nil {
			return false, err
		}
		return false, uc.repo.Update(ctx, existing)
	}

	e, err := employee.NewEmployee(entry.Office365ID, entry.Email, entry.DisplayName, entry.Profile)
	if err != nil {
		return false, err
	}
	if err := e.ApplyDirectory(entry.Email, entry.DisplayName, entry.Profile); err != nil {
		return false, err
	}
	return true, uc.repo.Create(ctx, e)
}
