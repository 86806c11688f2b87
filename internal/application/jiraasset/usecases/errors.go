package usecases

import (
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

// upstreamError reports a Jira failure as a 502 unless it is already an AppError.
func upstreamError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewUpstreamError("jira assets request failed", err.Error())
}
