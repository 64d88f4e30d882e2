package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/upload"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/RoyceAzure/lab/sellnow/internal/util"
	"github.com/RoyceAzure/lab/sellnow/internal/validator"
	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`[^A-Za-z0-9-]+`)

type IProductService interface {
	CreateProduct(ctx context.Context, arg CreateProductArg) (*model.Product, error)
	UserProducts(ctx context.Context, userID uint) ([]model.Product, error)
	Product(ctx context.Context, productID uint) (*model.Product, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	CanModifyProduct(ctx context.Context, productID, userID uint) (bool, error)
}

// CreateProductArg 圖片與檔案皆為選配, nil表示未上傳
type CreateProductArg struct {
	UserID      uint
	Title       string
	Description string
	Price       decimal.Decimal
	Image       multipart.File
	ImageHeader *multipart.FileHeader
	File        multipart.File
	FileHeader  *multipart.FileHeader
}

type ProductService struct {
	productRepo db.IProductRepository
	uploader    upload.IUploader
}

func NewProductService(productRepo db.IProductRepository, uploader upload.IUploader) IProductService {
	return &ProductService{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

// CreateProduct 上架商品
// 欄位驗證先於檔案處理, 任一上傳失敗即中止, 不會留下half-created的商品
func (s *ProductService) CreateProduct(ctx context.Context, arg CreateProductArg) (*model.Product, error) {
	v := validator.New()
	v.ValidateTitle(arg.Title)
	v.ValidatePrice(arg.Price)
	if v.HasErrors() {
		return nil, serr.NewFields(serr.ValidationCode, v.Errors())
	}

	var imagePath, filePath string
	var err error

	if arg.Image != nil && arg.ImageHeader != nil {
		imagePath, err = s.uploader.SaveImage(arg.Image, arg.ImageHeader)
		if err != nil {
			return nil, err
		}
	}

	if arg.File != nil && arg.FileHeader != nil {
		filePath, err = s.uploader.SaveProductFile(arg.File, arg.FileHeader)
		if err != nil {
			return nil, err
		}
	}

	product := &model.Product{
		UserID:      arg.UserID,
		Title:       arg.Title,
		Slug:        generateSlug(arg.Title),
		Description: arg.Description,
		Price:       arg.Price,
		ImagePath:   imagePath,
		FilePath:    filePath,
		IsActive:    true,
	}
	created, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "failed to create product", err)
	}

	return s.productRepo.GetProductByID(ctx, created.ProductID)
}

func (s *ProductService) UserProducts(ctx context.Context, userID uint) ([]model.Product, error) {
	return s.productRepo.GetActiveProductsByUserID(ctx, userID)
}

func (s *ProductService) Product(ctx context.Context, productID uint) (*model.Product, error) {
	return s.productRepo.GetProductByID(ctx, productID)
}

func (s *ProductService) AllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetActiveProducts(ctx)
}

// CanModifyProduct 商品擁有權檢查
func (s *ProductService) CanModifyProduct(ctx context.Context, productID, userID uint) (bool, error) {
	return s.productRepo.BelongsToUser(ctx, productID, userID)
}

// 標題轉小寫, 非英數字元轉dash, 加五位隨機尾碼避免撞名
func generateSlug(title string) string {
	slug := strings.ToLower(strings.Trim(slugPattern.ReplaceAllString(title, "-"), "-"))
	return fmt.Sprintf("%s-%d", slug, util.RandomInt(10000, 99999))
}
