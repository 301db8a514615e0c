package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, inventoryRepo repo.InventoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

type CreateProductInput struct {
	SellerID    int64
	Name        string
	Description string
	Price       int64
	Stock       int64
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *int64
	Stock       *int64
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if in.SellerID <= 0 {
		return model.Product{}, NewAppError(KindValidation, "seller_id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewAppError(KindValidation, "name is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewAppError(KindValidation, "price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewAppError(KindValidation, "stock must be >= 0")
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		SellerID:    in.SellerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err != nil {
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	return created, nil
}

// 価格・説明の更新はProductRepository、在庫はInventoryRepository経由。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewAppError(KindValidation, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewAppError(KindNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Product{}, NewAppError(KindValidation, "name is required")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewAppError(KindValidation, "price must be >= 0")
		}
		p.Price = *in.Price
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewAppError(KindNotFound, "product not found")
		}
		return model.Product{}, NewAppError(KindInternal, "db error")
	}

	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewAppError(KindValidation, "stock must be >= 0")
		}
		if err := u.inventoryRepo.SetStock(ctx, id, *in.Stock); err != nil {
			if err == repo.ErrNotFound {
				return model.Product{}, NewAppError(KindNotFound, "product not found")
			}
			return model.Product{}, NewAppError(KindInternal, "db error")
		}
		p.Stock = *in.Stock
	}

	return p, nil
}

func (u *ProductUsecase) ListBySeller(ctx context.Context, sellerID int64) ([]model.Product, error) {
	if sellerID <= 0 {
		return []model.Product{}, NewAppError(KindValidation, "invalid seller_id")
	}

	products, err := u.productRepo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return []model.Product{}, NewAppError(KindInternal, "db error")
	}
	return products, nil
}
