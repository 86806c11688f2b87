package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetWorkspaceUseCase struct {
	source jiraasset.Source
	logger logger.Interface
}

func NewGetWorkspaceUseCase(source jiraasset.Source, logger logger.Interface) *GetWorkspaceUseCase {
	return &GetWorkspaceUseCase{source: source, logger: logger}
}

func (uc *GetWorkspaceUseCase) Execute(ctx context.Context) (*dto.WorkspaceDTO, error) {
	workspaceID, err := uc.source.WorkspaceID(ctx)
	if err != nil {
		uc.logger.Errorw("failed to resolve jira assets workspace", "error", err)
		return nil, upstreamError(err)
	}
	return &dto.WorkspaceDTO{WorkspaceID: workspaceID}, nil
}
