package usecases

import (
	"context"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/goroutine"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

// sendAsync delivers a mail in the background. Failures are logged; the
// workflow step that triggered the mail has already been committed.
func sendAsync(log logger.Interface, name string, send func(ctx context.Context) error) {
	goroutine.SafeGo(log, name, func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			log.Errorw("failed to send notification", "notification", name, "error", err)
		}
	})
}

func allocationLines(a *allocation.Allocation) []notification.Line {
	items := a.Items()
	lines := make([]notification.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, notification.Line{
			Type:         item.Type,
			Brand:        item.Brand,
			Model:        item.Model,
			SerialNumber: item.SerialNumber,
			InternalID:   item.InternalID,
			Condition:    item.Condition.String(),
		})
	}
	return lines
}
