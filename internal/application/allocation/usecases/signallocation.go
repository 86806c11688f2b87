package usecases

import (
	"context"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type SignAllocationCommand struct {
	ID             string
	SignerName     string
	SignatureImage string
}

// SignAllocationUseCase records the employee signature and mails them a receipt.
type SignAllocationUseCase struct {
	repo     allocation.Repository
	notifier notification.Notifier
	logger   logger.Interface
}

func NewSignAllocationUseCase(repo allocation.Repository, notifier notification.Notifier, logger logger.Interface) *SignAllocationUseCase {
	return &SignAllocationUseCase{repo: repo, notifier: notifier, logger: logger}
}

func (uc *SignAllocationUseCase) Execute(ctx context.Context, cmd SignAllocationCommand) (*dto.AllocationDTO, error) {
	a, err := loadAllocation(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := a.Sign(cmd.SignerName, cmd.SignatureImage); err != nil {
		uc.logger.Warnw("allocation signature refused", "id", cmd.ID, "error", err)
		return nil, domainError(err)
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to save allocation signature", "id", cmd.ID, "error", err)
		return nil, err
	}

	sig := a.Signature()
	uc.logger.Infow("allocation signed", "id", a.ID(), "reference", a.Reference(), "fingerprint", sig.Fingerprint)

	if uc.notifier != nil && a.UserEmail() != "" {
		msg := notification.AllocationSigned{
			To:           a.UserEmail(),
			EmployeeName: a.UserName(),
			Reference:    a.Reference(),
			SignerName:   sig.SignerName,
			SignedAt:     signedAt(a),
			DeliveryDate: a.DeliveryDate(),
			Lines:        allocationLines(a),
			Accessories:  a.Extras().Accessories,
			Notes:        a.Extras().Notes,
		}
		sendAsync(uc.logger, "allocation-signed-mail", func(ctx context.Context) error {
			return uc.notifier.AllocationSigned(ctx, msg)
		})
	}

	return dto.ToAllocationDTO(a), nil
}

func signedAt(a *allocation.Allocation) time.Time {
	if t := a.SignedAt(); t != nil {
		return *t
	}
	return time.Time{}
}
