package db

import (
	"context"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetActiveProductsByUserID(ctx context.Context, userID uint) ([]model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	BelongsToUser(ctx context.Context, productID, userID uint) (bool, error)
	DeactivateProduct(ctx context.Context, productID uint) error
	UpdateProduct(ctx context.Context, product *model.Product) error
}

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

var _ IProductRepository = (*ProductRepo)(nil)

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.dbDao.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Read - 根據ID查詢商品, 不過濾is_active, 由caller決定
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢賣家上架中的商品, 新到舊
func (s *ProductRepo) GetActiveProductsByUserID(ctx context.Context, userID uint) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Read - 公開目錄, 所有上架中的商品
func (s *ProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 檢查商品是否屬於該賣家
func (s *ProductRepo) BelongsToUser(ctx context.Context, productID, userID uint) (bool, error) {
	var count int64
	err := s.dbDao.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

// 下架商品, 不做實體刪除
func (s *ProductRepo) DeactivateProduct(ctx context.Context, productID uint) error {
	return s.dbDao.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("is_active", false).Error
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Save(product).Error
}
