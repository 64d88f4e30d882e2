package api

import (
	"github.com/RoyceAzure/lab/sellnow/internal/api/handler"
	m "github.com/RoyceAzure/lab/sellnow/internal/api/middleware"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server 聚合所有HTTP handler
type Server struct {
	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	PublicHandler   *handler.PublicHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	publicHandler *handler.PublicHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		CheckoutHandler: checkoutHandler,
		PublicHandler:   publicHandler,
	}
}

// SetupRouter 組出完整的HTTP入口
// chi負責全局中間件, 路由配對交給自訂dispatcher
// dispatcher照註冊順序線性比對, 所有靜態路由都要排在/{username}之前
func SetupRouter(server *Server, sessionManager *session.Manager, logger *zerolog.Logger) *chi.Mux {
	d := router.NewDispatcher()

	d.Get("/", server.AuthHandler.Landing)
	d.Get("/login", server.AuthHandler.LoginForm)
	d.Post("/login", server.AuthHandler.Login)
	d.Get("/register", server.AuthHandler.RegisterForm)
	d.Post("/register", server.AuthHandler.Register)
	d.Get("/logout", server.AuthHandler.Logout)
	d.Get("/dashboard", server.AuthHandler.Dashboard)
	d.Get("/products", server.ProductHandler.Index)
	d.Get("/products/add", server.ProductHandler.CreateForm)
	d.Post("/products/add", server.ProductHandler.Store)
	d.Get("/cart", server.CartHandler.Index)
	d.Post("/cart/add", server.CartHandler.Add)
	d.Get("/cart/clear", server.CartHandler.Clear)
	d.Get("/checkout", server.CheckoutHandler.Index)
	d.Post("/checkout/process", server.CheckoutHandler.Process)
	d.Get("/payment", server.CheckoutHandler.Payment)
	d.Post("/payment/success", server.CheckoutHandler.Success)
	// 動態路由必須殿後, 否則會攔走上面所有單段路徑
	d.Get("/{username}", server.PublicHandler.Profile)

	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.RecoverMiddleware(logger))
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.SessionMiddleware(sessionManager, logger))

	r.Mount("/", d)
	return r
}
