package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
	userRepo  *UserRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_sellnow", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())
	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.userRepo = NewUserRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM users")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

// 創建測試用的買家
func (suite *OrderRepoTestSuite) createTestUser() *model.User {
	user := &model.User{
		Email:        "buyer@example.com",
		Username:     "buyer",
		FullName:     "Test Buyer",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	suite.userRepo.CreateUser(context.Background(), user)
	return user
}

func (suite *OrderRepoTestSuite) TestCreateOrder() {
	user := suite.createTestUser()
	order := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(44.98),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now(),
	}

	created, err := suite.orderRepo.CreateOrder(context.Background(), order)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), created.OrderID)
	require.Equal(suite.T(), constants.PaymentStatusPending, created.PaymentStatus)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID() {
	user := suite.createTestUser()
	order := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(100.00),
		PaymentProvider: "paypal",
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now(),
	}
	suite.orderRepo.CreateOrder(context.Background(), order)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)

	require.NoError(suite.T(), err)
	require.True(suite.T(), order.TotalAmount.Equal(found.TotalAmount))
	require.Equal(suite.T(), order.UserID, found.UserID)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID_NotFound() {
	found, err := suite.orderRepo.GetOrderByID(context.Background(), 999)

	require.Error(suite.T(), err)
	require.Nil(suite.T(), found)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserID_OrderedByDateDesc() {
	user := suite.createTestUser()

	older := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(10.00),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now().Add(-time.Hour),
	}
	newer := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(20.00),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now(),
	}
	suite.orderRepo.CreateOrder(context.Background(), older)
	suite.orderRepo.CreateOrder(context.Background(), newer)

	found, err := suite.orderRepo.GetOrdersByUserID(context.Background(), user.UserID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), found, 2)
	// 新訂單在前
	require.Equal(suite.T(), newer.OrderID, found[0].OrderID)
	require.Equal(suite.T(), older.OrderID, found[1].OrderID)
}

func (suite *OrderRepoTestSuite) TestUpdatePaymentStatus() {
	user := suite.createTestUser()
	order := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(44.98),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now(),
	}
	suite.orderRepo.CreateOrder(context.Background(), order)

	err := suite.orderRepo.UpdatePaymentStatus(context.Background(), order.OrderID, constants.PaymentStatusCompleted, "MOCK_abc123")
	require.NoError(suite.T(), err)

	updated, _ := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.Equal(suite.T(), constants.PaymentStatusCompleted, updated.PaymentStatus)
	require.Equal(suite.T(), "MOCK_abc123", updated.TransactionID)
}

func (suite *OrderRepoTestSuite) TestUpdatePaymentStatus_KeepsTransactionIDWhenEmpty() {
	user := suite.createTestUser()
	order := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(44.98),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusPending,
		TransactionID:   "MOCK_original",
		OrderDate:       time.Now(),
	}
	suite.orderRepo.CreateOrder(context.Background(), order)

	err := suite.orderRepo.UpdatePaymentStatus(context.Background(), order.OrderID, constants.PaymentStatusCancelled, "")
	require.NoError(suite.T(), err)

	updated, _ := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.Equal(suite.T(), constants.PaymentStatusCancelled, updated.PaymentStatus)
	require.Equal(suite.T(), "MOCK_original", updated.TransactionID)
}

func (suite *OrderRepoTestSuite) TestGetOrderByTransactionID() {
	user := suite.createTestUser()
	order := &model.Order{
		UserID:          user.UserID,
		TotalAmount:     decimal.NewFromFloat(44.98),
		PaymentProvider: "stripe",
		PaymentStatus:   constants.PaymentStatusCompleted,
		TransactionID:   "MOCK_findme",
		OrderDate:       time.Now(),
	}
	suite.orderRepo.CreateOrder(context.Background(), order)

	found, err := suite.orderRepo.GetOrderByTransactionID(context.Background(), "MOCK_findme")

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), order.OrderID, found.OrderID)
}

// 執行測試套件
func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
