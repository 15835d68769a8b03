package service

import (
	"context"
	"time"

	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/repository"

	"golang.org/x/sync/singleflight"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cacheTTL     time.Duration
	group        singleflight.Group
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, cacheTTL time.Duration) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cacheTTL:     cacheTTL,
	}
}

// List 分类列表（附带商品数量）
// 商品引用了未登记的分类名时同样返回，保证计数完整
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return readThrough(ctx, &s.group, "categories", s.cacheTTL, func() ([]models.Category, error) {
		categories, err := s.categoryRepo.List()
		if err != nil {
			return nil, err
		}
		counts, err := s.productRepo.CountByCategory()
		if err != nil {
			return nil, err
		}
		countMap := make(map[string]int64, len(counts))
		for _, row := range counts {
			countMap[row.Category] = row.Count
		}

		result := make([]models.Category, 0, len(categories)+len(counts))
		seen := make(map[string]struct{}, len(categories))
		for _, category := range categories {
			category.ProductCount = countMap[category.Name]
			seen[category.Name] = struct{}{}
			result = append(result, category)
		}
		for _, row := range counts {
			if row.Category == "" {
				continue
			}
			if _, ok := seen[row.Category]; ok {
				continue
			}
			result = append(result, models.Category{Name: row.Category, ProductCount: row.Count})
		}
		return result, nil
	})
}
