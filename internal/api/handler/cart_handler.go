package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
)

type CartHandler struct {
	cartService    service.ICartService
	productService service.IProductService
	authService    service.IAuthService
	renderer       *render.Renderer
}

func NewCartHandler(
	cartService service.ICartService,
	productService service.IProductService,
	authService service.IAuthService,
	renderer *render.Renderer,
) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService:    cartService,
		productService: productService,
		authService:    authService,
		renderer:       renderer,
	}
}

func (h *CartHandler) Index(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)

	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = "Cart"
	data["Items"] = h.cartService.Items(sess)
	data["Total"] = h.cartService.Total(sess).StringFixed(2)
	h.renderer.HTML(w, http.StatusOK, "cart", data)
}

// Add 加入購物車, JSON endpoint
// 價格一律以db為準, 不信任前端送來的金額
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)

	productID, _ := strconv.ParseUint(r.PostFormValue("product_id"), 10, 64)
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		quantity = 1
	}

	if productID == 0 || quantity <= 0 {
		render.JSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": "Invalid product or quantity",
		})
		return
	}

	product, err := h.productService.Product(r.Context(), uint(productID))
	if err != nil {
		render.JSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": "Product not found",
		})
		return
	}

	if err := h.cartService.AddToCart(sess, product.ProductID, product.Title, product.Price, quantity); err != nil {
		render.JSON(w, http.StatusOK, map[string]any{
			"status":  "error",
			"message": "Failed to add to cart",
		})
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  h.cartService.Count(sess),
		"total":  h.cartService.Total(sess).StringFixed(2),
	})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request, _ router.Params) {
	h.cartService.Clear(sessionOf(r))
	redirect(w, r, "/cart")
}
