package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/payment"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
	cartService     service.ICartService
	authService     service.IAuthService
	paymentFactory  *payment.Factory
	renderer        *render.Renderer
}

func NewCheckoutHandler(
	checkoutService service.ICheckoutService,
	cartService service.ICartService,
	authService service.IAuthService,
	paymentFactory *payment.Factory,
	renderer *render.Renderer,
) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	if paymentFactory == nil {
		panic("paymentFactory cannot be nil")
	}
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
		authService:     authService,
		paymentFactory:  paymentFactory,
		renderer:        renderer,
	}
}

func (h *CheckoutHandler) Index(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if h.cartService.IsEmpty(sess) {
		redirect(w, r, "/cart")
		return
	}

	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = "Checkout"
	data["Total"] = h.cartService.Total(sess).StringFixed(2)
	data["Providers"] = constants.CheckoutProviders
	data["Error"] = r.URL.Query().Get("error")
	h.renderer.HTML(w, http.StatusOK, "checkout", data)
}

func (h *CheckoutHandler) Process(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if h.cartService.IsEmpty(sess) {
		redirect(w, r, "/cart")
		return
	}
	if !h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/login")
		return
	}
	if !csrfValid(w, r, sess) {
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), sess)
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	provider := r.PostFormValue("provider")
	if provider == "" {
		provider = "Unknown"
	}

	order, err := h.checkoutService.CreateOrder(r.Context(), sess, user.UserID, provider)
	if err != nil {
		redirectWithError(w, r, "/checkout", "Failed to create order")
		return
	}

	redirect(w, r, fmt.Sprintf("/payment?order_id=%d&provider=%s", order.OrderID, url.QueryEscape(provider)))
}

func (h *CheckoutHandler) Payment(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)

	orderID, _ := strconv.Atoi(r.URL.Query().Get("order_id"))
	if orderID <= 0 {
		redirect(w, r, "/cart")
		return
	}
	provider := r.URL.Query().Get("provider")
	if provider == "" {
		provider = "Unknown"
	}

	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = "Payment"
	data["OrderID"] = orderID
	data["Provider"] = provider
	h.renderer.HTML(w, http.StatusOK, "payment", data)
}

// Success 模擬付款完成
// 以訂單上的provider解析gateway扣款, 交易編號由gateway決定
func (h *CheckoutHandler) Success(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/login")
		return
	}

	orderID, _ := strconv.Atoi(r.PostFormValue("order_id"))
	if orderID <= 0 {
		redirect(w, r, "/cart")
		return
	}

	order, err := h.checkoutService.Order(r.Context(), uint(orderID))
	if err != nil {
		if serr.CodeOf(err) == serr.NotFoundCode {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("Order not found"))
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gateway := h.paymentFactory.Get(order.PaymentProvider)
	charge, err := gateway.Charge(r.Context(), order.TotalAmount, constants.DefaultCurrency, order.OrderID)
	if err != nil || !charge.Success {
		redirectWithError(w, r, "/checkout", "Payment failed")
		return
	}

	completed, err := h.checkoutService.CompletePayment(r.Context(), sess, order.OrderID, charge.TransactionID)
	if err != nil {
		redirectWithError(w, r, "/checkout", "Payment failed")
		return
	}

	data := pageData(sess, true)
	data["Title"] = "Payment successful"
	data["Order"] = completed
	h.renderer.HTML(w, http.StatusOK, "payment_success", data)
}
