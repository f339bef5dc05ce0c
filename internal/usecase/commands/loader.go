package commands

import (
	"context"
	"strings"

	"codevend/internal/domain/code"
	"codevend/internal/infra"
	"codevend/internal/pkg/errs"
)

var ErrCodeValidation = errs.New("code validation failed")

// LoadResult counts how many candidate codes were newly inserted and how many
// were skipped because the value already existed (anywhere, any product).
type LoadResult struct {
	Inserted   int
	Duplicates int
}

type CodeLoaderCommands interface {
	Load(ctx context.Context, productID string, values []string) (*LoadResult, error)
}

type codeLoaderImpl struct {
	products ProductReader
	codes    CodeRepository
}

func NewCodeLoaderCommands(products ProductReader, codes CodeRepository) CodeLoaderCommands {
	return &codeLoaderImpl{
		products: products,
		codes:    codes,
	}
}

// Load ingests a batch of candidate code strings for a product. Values are
// validated and stored trimmed; a whole batch is rejected when any value is
// invalid. Only product existence is checked, so inactive products may still
// be restocked. Each value inserts independently, so a duplicate never aborts
// the rest of the batch.
// When the input list repeats a value, the first occurrence wins the slot and
// the rest count as duplicates.
func (u *codeLoaderImpl) Load(ctx context.Context, productID string, values []string) (*LoadResult, error) {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if err := code.ValidateValue(v); err != nil {
			return nil, errs.Mark(err, ErrCodeValidation)
		}
		trimmed = append(trimmed, strings.TrimSpace(v))
	}

	if _, err := u.products.Find(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	inserted, duplicates, err := u.codes.BulkInsertIfAbsent(ctx, productID, trimmed)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &LoadResult{Inserted: inserted, Duplicates: duplicates}, nil
}
