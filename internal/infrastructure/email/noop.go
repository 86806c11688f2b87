package email

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

var _ notification.Notifier = (*LogNotifier)(nil)

// LogNotifier is used when email.enabled is false: mails are only logged.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) AllocationSigned(_ context.Context, msg notification.AllocationSigned) error {
	n.logger.Infow("email disabled, allocation signed mail skipped", "reference", msg.Reference)
	return nil
}

func (n *LogNotifier) ReturnRecorded(_ context.Context, msg notification.ReturnRecorded) error {
	n.logger.Infow("email disabled, return mail skipped", "reference", msg.Reference)
	return nil
}
