package product

import (
	"context"
	"fmt"
	"time"

	"github.com/baraholka/marketplace/constant"
	"github.com/baraholka/marketplace/model"
	productrepo "github.com/baraholka/marketplace/repository/product"
	"github.com/baraholka/marketplace/utils/errors"
	"github.com/baraholka/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	List(ctx context.Context) (*model.ProductListResponse, error)
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.CreateProductResponse, error)
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) List(ctx context.Context) (*model.ProductListResponse, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	now := time.Now()
	for i := range items {
		items[i].Posted = PostedLabel(items[i].PostedAt, now)
	}

	return &model.ProductListResponse{Products: items}, nil
}

func (s *productAppImpl) Create(ctx context.Context, req *model.CreateProductRequest) (*model.CreateProductResponse, error) {
	emoji, ok := constant.CategoryEmojis[req.Category]
	if !ok {
		emoji = constant.DefaultCategoryEmoji
	}

	id, err := s.productRepo.Create(ctx, &model.ProductEntity{
		Title:       req.Title,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		ImageEmoji:  emoji,
		SellerID:    constant.DefaultSellerID,
		// New listings are always flagged verified; the verification flow
		// only ever raises this flag, never lowers it.
		VerifiedSeller: true,
	})
	if err != nil {
		logger.Error("[Create] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, err.Error())
	}

	return &model.CreateProductResponse{
		ID:      id,
		Message: "Product created successfully",
	}, nil
}

// PostedLabel renders how long ago a listing was posted, counted in whole
// 24-hour periods. The grammatical form switches at 5 days and again at 2
// weeks (дня/дней, недели/недель).
func PostedLabel(posted, now time.Time) string {
	days := int(now.Sub(posted).Hours() / 24)
	switch {
	case days == 0:
		return "Сегодня"
	case days == 1:
		return "1 день назад"
	case days < 7:
		if days < 5 {
			return fmt.Sprintf("%d дня назад", days)
		}
		return fmt.Sprintf("%d дней назад", days)
	default:
		weeks := days / 7
		if days < 14 {
			return fmt.Sprintf("%d недели назад", weeks)
		}
		return fmt.Sprintf("%d недель назад", weeks)
	}
}
