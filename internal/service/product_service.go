package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/visualshop/internal/cache"
	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/logger"
	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/repository"

	"golang.org/x/sync/singleflight"
)

const defaultRelatedLimit = 4

// ProductService 商品目录服务（只读，带读穿缓存）
type ProductService struct {
	productRepo  repository.ProductRepository
	cacheTTL     time.Duration
	relatedLimit int
	group        singleflight.Group
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, cfg config.CatalogConfig) *ProductService {
	relatedLimit := cfg.RelatedLimit
	if relatedLimit <= 0 {
		relatedLimit = defaultRelatedLimit
	}
	return &ProductService{
		productRepo:  productRepo,
		cacheTTL:     time.Duration(cfg.CacheTTLSeconds) * time.Second,
		relatedLimit: relatedLimit,
	}
}

// List 商品列表，category 为空时返回全部
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.TrimSpace(category)
	key := "products:all"
	if category != "" {
		key = "products:category:" + strings.ToLower(category)
	}
	return readThrough(ctx, &s.group, key, s.cacheTTL, func() ([]models.Product, error) {
		products, _, err := s.productRepo.List(repository.ProductListFilter{Category: category})
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []models.Product{}
		}
		return products, nil
	})
}

// GetByID 商品详情
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := readThrough(ctx, &s.group, fmt.Sprintf("product:%d", id), s.cacheTTL, func() (*models.Product, error) {
		return s.productRepo.GetByID(id)
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Search 关键字搜索（名称/描述/分类），关键字为空时返回全部
func (s *ProductService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.List(ctx, "")
	}
	products, _, err := s.productRepo.List(repository.ProductListFilter{Search: keyword})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// ListRelated 同分类推荐，limit <= 0 时使用默认数量
func (s *ProductService) ListRelated(ctx context.Context, id uint, limit int) ([]models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.relatedLimit
	}
	related, err := s.productRepo.ListRelated(product.Category, product.ID, limit)
	if err != nil {
		return nil, err
	}
	if related == nil {
		related = []models.Product{}
	}
	return related, nil
}

// readThrough 先读缓存，未命中时合并并发回源并回填
func readThrough[T any](ctx context.Context, group *singleflight.Group, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	hit, err := cache.GetCatalog(ctx, key, &cached)
	if err != nil {
		logger.Warnw("catalog_cache_get_failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	value, err, _ := group.Do(key, func() (interface{}, error) {
		loaded, err := load()
		if err != nil {
			return nil, err
		}
		if !isCacheableCatalogValue(loaded) {
			return loaded, nil
		}
		if err := cache.SetCatalog(ctx, key, loaded, ttl); err != nil {
			logger.Warnw("catalog_cache_set_failed", "key", key, "error", err)
		}
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}

// isCacheableCatalogValue 未命中的商品不回填，避免新建商品在 TTL 内仍返回 404
func isCacheableCatalogValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case *models.Product:
		return v != nil
	case *models.Category:
		return v != nil
	default:
		return true
	}
}
