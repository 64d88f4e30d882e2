package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
	"gorm.io/gorm"
)

type PublicHandler struct {
	userRepo       db.IUserRepository
	productService service.IProductService
	authService    service.IAuthService
	renderer       *render.Renderer
}

func NewPublicHandler(
	userRepo db.IUserRepository,
	productService service.IProductService,
	authService service.IAuthService,
	renderer *render.Renderer,
) *PublicHandler {
	if userRepo == nil {
		panic("userRepo cannot be nil")
	}
	return &PublicHandler{
		userRepo:       userRepo,
		productService: productService,
		authService:    authService,
		renderer:       renderer,
	}
}

// Profile 賣家主頁, 只列上架中的商品
func (h *PublicHandler) Profile(w http.ResponseWriter, r *http.Request, p router.Params) {
	sess := sessionOf(r)

	seller, err := h.userRepo.GetUserByUsername(r.Context(), p["username"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("User not found"))
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	products, err := h.productService.UserProducts(r.Context(), seller.UserID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = seller.Username
	data["Seller"] = seller
	data["Products"] = products
	h.renderer.HTML(w, http.StatusOK, "profile", data)
}
