package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"time"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"gorm.io/gorm"
)

// in-memory測試替身, 不依賴外部db

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

var _ db.IUserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.UserID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	cp := *user
	r.users[user.UserID] = &cp
	return user, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := r.GetUserByUsername(ctx, username)
	return err == nil, nil
}

type fakeProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*model.Product{}, nextID: 1}
}

var _ db.IProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.ProductID = r.nextID
	product.CreatedAt = time.Now()
	r.nextID++
	cp := *product
	r.products[product.ProductID] = &cp
	return product, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) GetActiveProductsByUserID(ctx context.Context, userID uint) ([]model.Product, error) {
	var result []model.Product
	for _, product := range r.products {
		if product.UserID == userID && product.IsActive {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	for _, product := range r.products {
		if product.IsActive {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) BelongsToUser(ctx context.Context, productID, userID uint) (bool, error) {
	product, ok := r.products[productID]
	return ok && product.UserID == userID, nil
}

func (r *fakeProductRepo) DeactivateProduct(ctx context.Context, productID uint) error {
	if product, ok := r.products[productID]; ok {
		product.IsActive = false
	}
	return nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	cp := *product
	r.products[product.ProductID] = &cp
	return nil
}

type fakeOrderRepo struct {
	orders      map[uint]*model.Order
	nextID      uint
	createCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*model.Order{}, nextID: 1}
}

var _ db.IOrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	r.createCalls++
	order.OrderID = r.nextID
	order.CreatedAt = time.Now()
	r.nextID++
	cp := *order
	r.orders[order.OrderID] = &cp
	return order, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var result []model.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	// 新到舊
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].OrderDate.After(result[i].OrderDate) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetOrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	for _, order := range r.orders {
		if order.TransactionID == transactionID {
			cp := *order
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, orderID uint, status string, transactionID string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.PaymentStatus = status
	if transactionID != "" {
		order.TransactionID = transactionID
	}
	return nil
}

type fakeUploader struct {
	imagePath string
	filePath  string
	err       error
}

func (u *fakeUploader) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.imagePath, nil
}

func (u *fakeUploader) SaveProductFile(file multipart.File, header *multipart.FileHeader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.filePath, nil
}

func newTestSession() *session.Session {
	return session.New()
}

type fakeMultipartFile struct {
	*bytes.Reader
}

func (f *fakeMultipartFile) Close() error { return nil }

func fakeMultipartUpload() (multipart.File, *multipart.FileHeader) {
	content := []byte("fake upload content")
	return &fakeMultipartFile{bytes.NewReader(content)},
		&multipart.FileHeader{Filename: "fake.png", Size: int64(len(content))}
}
