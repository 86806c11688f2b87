package http

import (
	jiraUsecases "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/usecases"
)

// Operations exposes the use cases run outside of HTTP requests, such as the
// one-shot jira commands of the CLI.
type Operations struct {
	DetectMapping *jiraUsecases.DetectMappingUseCase
	SyncAssets    *jiraUsecases.SyncAssetsUseCase
}

func (c *Container) Operations() Operations {
	return Operations{
		DetectMapping: c.ucs.detectMapping,
		SyncAssets:    c.ucs.syncAssets,
	}
}
