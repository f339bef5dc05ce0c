package commands

import (
	"context"

	"codevend/internal/infra"
	"codevend/internal/pkg/clock"
	"codevend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCodeNotFound        = errs.New("code not found")
	ErrCodeAlreadyAssigned = errs.New("code already assigned")
)

type AssignCodeResult struct {
	Code string
}

// CodeAdminCommands covers the operator paths that bypass the per-user cap.
type CodeAdminCommands interface {
	// Assign hands a specific code to a user, ignoring the product cap. It
	// still runs through the atomic conditional-flip-plus-ledger unit, so a
	// concurrent delivery can never hand out the same code twice.
	Assign(ctx context.Context, codeID uuid.UUID, user string) (*AssignCodeResult, error)
	Delete(ctx context.Context, codeID uuid.UUID) error
}

type codeAdminImpl struct {
	codes CodeRepository
	clock clock.Clock
}

func NewCodeAdminCommands(codes CodeRepository, clock clock.Clock) CodeAdminCommands {
	return &codeAdminImpl{codes: codes, clock: clock}
}

func (u *codeAdminImpl) Assign(ctx context.Context, codeID uuid.UUID, user string) (*AssignCodeResult, error) {
	snap, err := u.codes.FindByID(ctx, codeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Assigned {
		return nil, ErrCodeAlreadyAssigned
	}

	err = u.codes.AssignAndRecord(ctx, AssignParams{
		CodeID:     snap.ID,
		ProductID:  snap.ProductID,
		User:       user,
		CodeValue:  snap.Value,
		AssignedAt: u.clock.Now().UTC(),
	})
	if err != nil {
		// Losing the race here means someone else assigned it first.
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCodeAlreadyAssigned
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AssignCodeResult{Code: snap.Value}, nil
}

func (u *codeAdminImpl) Delete(ctx context.Context, codeID uuid.UUID) error {
	if err := u.codes.Delete(ctx, codeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCodeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
