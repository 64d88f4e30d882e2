package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.IProductService
	authService    service.IAuthService
	renderer       *render.Renderer
}

func NewProductHandler(productService service.IProductService, authService service.IAuthService, renderer *render.Renderer) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		renderer:       renderer,
	}
}

// Index 公開商品目錄
func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	products, err := h.productService.AllProducts(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = "Products"
	data["Products"] = products
	h.renderer.HTML(w, http.StatusOK, "products", data)
}

func (h *ProductHandler) CreateForm(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/login")
		return
	}

	data := pageData(sess, true)
	data["Title"] = "Add product"
	data["Error"] = r.URL.Query().Get("error")
	h.renderer.HTML(w, http.StatusOK, "product_add", data)
}

// Store 建立商品
// 未登入的POST回401 JSON, 不redirect
func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !h.authService.IsAuthenticated(sess) {
		render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	// multipart要先parse, csrf token也在form裡
	if err := r.ParseMultipartForm(constants.MaxFileSizeBytes); err != nil {
		redirectWithError(w, r, "/products/add", "Invalid form submission")
		return
	}
	if !csrfValid(w, r, sess) {
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), sess)
	if err != nil {
		render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil {
		redirectWithError(w, r, "/products/add", "Price must be a number")
		return
	}

	arg := service.CreateProductArg{
		UserID:      user.UserID,
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Price:       price,
	}

	if image, header, err := r.FormFile("image"); err == nil {
		defer image.Close()
		arg.Image = image
		arg.ImageHeader = header
	}
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		arg.File = file
		arg.FileHeader = header
	}

	if _, err := h.productService.CreateProduct(r.Context(), arg); err != nil {
		redirectWithError(w, r, "/products/add", errorMessageOf(err))
		return
	}

	redirect(w, r, "/dashboard")
}
