package commands

import (
	"context"

	"codevend/internal/domain/product"
	reqdto "codevend/internal/handler/dto/request"
	"codevend/internal/infra"
	"codevend/internal/pkg/errs"
)

var (
	ErrProductAlreadyExists = errs.New("product already exists")
	ErrProductValidation    = errs.New("product validation failed")
)

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) error
	Update(ctx context.Context, id string, req reqdto.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type productUseCaseImpl struct {
	repo ProductRepository
}

func NewProductCommands(repo ProductRepository) ProductCommands {
	return &productUseCaseImpl{repo: repo}
}

func (u *productUseCaseImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) error {
	maxPerUser := 0
	if req.MaxPerUser != nil {
		maxPerUser = *req.MaxPerUser
	}

	entity, err := product.NewProduct(req.ID, req.Name, req.Description, maxPerUser)
	if err != nil {
		return errs.Mark(err, ErrProductValidation)
	}

	if err := u.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrProductAlreadyExists
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *productUseCaseImpl) Update(ctx context.Context, id string, req reqdto.UpdateProductRequest) error {
	if req.Status != nil {
		if _, err := product.NewStatus(*req.Status); err != nil {
			return errs.Mark(err, ErrProductValidation)
		}
	}
	if req.MaxPerUser != nil && *req.MaxPerUser < 1 {
		return errs.Mark(product.ErrInvalidMaxPerUser, ErrProductValidation)
	}

	patch := ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		MaxPerUser:  req.MaxPerUser,
		Status:      req.Status,
	}

	if err := u.repo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *productUseCaseImpl) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
