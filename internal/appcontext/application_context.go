package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/RoyceAzure/lab/sellnow/internal/api"
	"github.com/RoyceAzure/lab/sellnow/internal/api/handler"
	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/config"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/payment"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/upload"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ApplicationContext 全程式生命週期的依賴, 啟動時一次組好
// 任一步失敗就中止啟動, 不帶病上線
type ApplicationContext struct {
	Cf          *config.Config
	Logger      *zerolog.Logger
	DbConn      *gorm.DB
	DbDao       *db.DbDao
	RedisClient *redis.Client

	SessionManager *session.Manager
	Uploader       *upload.Uploader
	PaymentFactory *payment.Factory
	Renderer       *render.Renderer

	UserRepo    db.IUserRepository
	ProductRepo db.IProductRepository
	OrderRepo   db.IOrderRepository

	AuthService     service.IAuthService
	CartService     service.ICartService
	ProductService  service.IProductService
	CheckoutService service.ICheckoutService

	Server *api.Server
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpDbDao(); err != nil {
		return err
	}
	if app.Cf.DbMigrate {
		if err := app.dbInit(); err != nil {
			return err
		}
	}
	if err := app.setUpRedis(); err != nil {
		return err
	}
	if err := app.setUpSessionManager(); err != nil {
		return err
	}
	if err := app.setUpInfra(); err != nil {
		return err
	}
	if err := app.setUpServices(); err != nil {
		return err
	}
	if err := app.setUpServer(); err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "sellnow").Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis connection")
	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	app.RedisClient = client
	log.Printf("Finish setup redis connection")
	return nil
}

func (app *ApplicationContext) setUpSessionManager() error {
	log.Printf("Start setup session manager")
	ttl := time.Duration(app.Cf.SessionTTLHour) * time.Hour
	app.SessionManager = session.NewManager(session.NewRedisStore(app.RedisClient), ttl)
	log.Printf("Finish setup session manager")
	return nil
}

func (app *ApplicationContext) setUpInfra() error {
	log.Printf("Start setup upload/payment/render infra")
	app.Uploader = upload.NewUploader(app.Cf.UploadDir)

	app.PaymentFactory = payment.NewFactory(app.Logger)
	// 模擬環境下所有provider都掛mock gateway
	app.PaymentFactory.Register("stripe", payment.NewMockGateway("Stripe"))
	app.PaymentFactory.Register("paypal", payment.NewMockGateway("PayPal"))
	app.PaymentFactory.Register("razorpay", payment.NewMockGateway("Razorpay"))

	renderer, err := render.NewRenderer(app.Logger)
	if err != nil {
		return err
	}
	app.Renderer = renderer
	log.Printf("Finish setup upload/payment/render infra")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")
	app.UserRepo = db.NewUserRepo(app.DbDao)
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)

	app.AuthService = service.NewAuthService(app.UserRepo)
	app.CartService = service.NewCartService()
	app.ProductService = service.NewProductService(app.ProductRepo, app.Uploader)
	app.CheckoutService = service.NewCheckoutService(app.OrderRepo, app.CartService)
	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) setUpServer() error {
	log.Printf("Start setup HTTP server handlers")
	app.Server = api.NewServer(
		handler.NewAuthHandler(app.AuthService, app.ProductService, app.CheckoutService, app.Renderer),
		handler.NewProductHandler(app.ProductService, app.AuthService, app.Renderer),
		handler.NewCartHandler(app.CartService, app.ProductService, app.AuthService, app.Renderer),
		handler.NewCheckoutHandler(app.CheckoutService, app.CartService, app.AuthService, app.PaymentFactory, app.Renderer),
		handler.NewPublicHandler(app.UserRepo, app.ProductService, app.AuthService, app.Renderer),
	)
	log.Printf("Finish setup HTTP server handlers")
	return nil
}

// db schema由migrations/管理, DB_MIGRATE=true時啟動套用
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start db migration")
	err := runDBMigration(
		app.Cf.MigrationURL,
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	log.Printf("Finish db migration")
	return nil
}

func runDBMigration(migrationURL string, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}
	return migration.Up()
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
