package commands

import (
	"context"
	"log/slog"
	"time"

	"codevend/internal/infra"
	"codevend/internal/pkg/clock"
	"codevend/internal/pkg/config"
	"codevend/internal/pkg/errs"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrNoStock                 = errs.New("no stock available")
	ErrContention              = errs.New("delivery retry limit exceeded")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// DeliverResult reports the code a user should use. Count is the number of
// distinct codes the user holds after this call; Max is the product's cap.
type DeliverResult struct {
	Code  string
	IsNew bool
	Count int
	Max   int
}

type DeliveryCommands interface {
	Deliver(ctx context.Context, productID, user string) (*DeliverResult, error)
}

type deliveryUseCaseImpl struct {
	products   ProductReader
	codes      CodeRepository
	deliveries DeliveryReader
	cfg        config.DeliveryConfig
	clock      clock.Clock
}

func NewDeliveryCommands(
	products ProductReader,
	codes CodeRepository,
	deliveries DeliveryReader,
	cfg config.Config,
	clock clock.Clock,
) DeliveryCommands {
	return &deliveryUseCaseImpl{
		products:   products,
		codes:      codes,
		deliveries: deliveries,
		cfg:        cfg.Delivery,
		clock:      clock,
	}
}

// Deliver returns the code the given user should use for the product, drawing
// a new one from the pool when the user is under the per-user cap.
//
// Concurrency: the cap check runs outside the assign transaction, so two truly
// simultaneous requests can both pass it and a user can overshoot the cap by a
// bounded margin. The ledger's uniqueness constraint still rules out the same
// code being recorded twice. StrictCap re-checks the count inside the
// transaction and closes the window at the cost of extra conflicts.
//
// A lost race (conditional flip touched zero rows, or the ledger insert hit
// the uniqueness constraint) restarts the whole operation; the loop is bounded
// and surfaces ErrContention when the ceiling is exceeded.
func (u *deliveryUseCaseImpl) Deliver(ctx context.Context, productID, user string) (*DeliverResult, error) {
	maxAttempts := u.cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				// Caller abandonment, not a store failure.
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * u.cfg.RetryBackoff):
			}
		}

		result, lostRace, err := u.tryDeliver(ctx, productID, user)
		if err != nil {
			return nil, err
		}
		if lostRace {
			slog.Debug("delivery lost race, retrying",
				"product_id", productID, "user", user, "attempt", attempt+1)
			continue
		}
		return result, nil
	}

	return nil, ErrContention
}

func (u *deliveryUseCaseImpl) tryDeliver(ctx context.Context, productID, user string) (*DeliverResult, bool, error) {
	prod, err := u.products.Find(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrProductNotFound
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !prod.Active {
		return nil, false, ErrProductNotFound
	}

	max := prod.MaxPerUser
	if max <= 0 {
		max = 1
	}

	held, err := u.deliveries.ListCodes(ctx, productID, user)
	if err != nil {
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Cap reached: the idempotent read path. Repeated calls keep returning the
	// most recently recorded code.
	if len(held) >= max {
		return &DeliverResult{
			Code:  held[len(held)-1],
			IsNew: false,
			Count: len(held),
			Max:   max,
		}, false, nil
	}

	picked, err := u.codes.PickAvailable(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrNoStock
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = u.codes.AssignAndRecord(ctx, AssignParams{
		CodeID:     picked.ID,
		ProductID:  productID,
		User:       user,
		CodeValue:  picked.Value,
		AssignedAt: u.clock.Now().UTC(),
		EnforceCap: u.cfg.StrictCap,
		MaxPerUser: max,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, true, nil
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &DeliverResult{
		Code:  picked.Value,
		IsNew: true,
		Count: len(held) + 1,
		Max:   max,
	}, false, nil
}
