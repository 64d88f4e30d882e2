package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/sellnow/internal/api/render"
	"github.com/RoyceAzure/lab/sellnow/internal/api/router"
	"github.com/RoyceAzure/lab/sellnow/internal/service"
)

type AuthHandler struct {
	authService     service.IAuthService
	productService  service.IProductService
	checkoutService service.ICheckoutService
	renderer        *render.Renderer
}

func NewAuthHandler(
	authService service.IAuthService,
	productService service.IProductService,
	checkoutService service.ICheckoutService,
	renderer *render.Renderer,
) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if renderer == nil {
		panic("renderer cannot be nil")
	}
	return &AuthHandler{
		authService:     authService,
		productService:  productService,
		checkoutService: checkoutService,
		renderer:        renderer,
	}
}

func (h *AuthHandler) Landing(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	data := pageData(sess, h.authService.IsAuthenticated(sess))
	data["Title"] = "Home"
	h.renderer.HTML(w, http.StatusOK, "landing", data)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	// 已登入者直接進dashboard
	if h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/dashboard")
		return
	}

	data := pageData(sess, false)
	data["Title"] = "Login"
	data["Error"] = r.URL.Query().Get("error")
	data["Message"] = r.URL.Query().Get("msg")
	h.renderer.HTML(w, http.StatusOK, "login", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !csrfValid(w, r, sess) {
		return
	}

	user, err := h.authService.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		redirectWithError(w, r, "/login", "Invalid credentials")
		return
	}

	if err := h.authService.StartSession(sess, user); err != nil {
		redirectWithError(w, r, "/login", "Login failed")
		return
	}
	redirect(w, r, "/dashboard")
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/dashboard")
		return
	}

	data := pageData(sess, false)
	data["Title"] = "Register"
	data["Error"] = r.URL.Query().Get("error")
	h.renderer.HTML(w, http.StatusOK, "register", data)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !csrfValid(w, r, sess) {
		return
	}

	_, err := h.authService.Register(
		r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("username"),
		r.PostFormValue("full_name"),
		r.PostFormValue("password"),
	)
	if err != nil {
		redirectWithError(w, r, "/register", errorMessageOf(err))
		return
	}

	redirect(w, r, "/login?msg=Registered+successfully")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ router.Params) {
	h.authService.Logout(sessionOf(r))
	redirect(w, r, "/")
}

func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ router.Params) {
	sess := sessionOf(r)
	if !h.authService.IsAuthenticated(sess) {
		redirect(w, r, "/login")
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), sess)
	if err != nil {
		redirect(w, r, "/login")
		return
	}

	products, _ := h.productService.UserProducts(r.Context(), user.UserID)
	orders, _ := h.checkoutService.UserOrders(r.Context(), user.UserID)

	data := pageData(sess, true)
	data["Title"] = "Dashboard"
	data["User"] = user
	data["Products"] = products
	data["Orders"] = orders
	h.renderer.HTML(w, http.StatusOK, "dashboard", data)
}
