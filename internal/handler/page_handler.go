package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"selfcare_portal/internal/middleware"
	"selfcare_portal/internal/service"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler renders the portal's HTML pages
type PageHandler struct {
	service  service.AuthService
	tmpl     *template.Template
	cookie   CookieConfig
	homePath string
}

// NewPageHandler parses the embedded templates
func NewPageHandler(s service.AuthService, cookie CookieConfig, homePath string) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{service: s, tmpl: tmpl, cookie: cookie, homePath: homePath}, nil
}

func (h *PageHandler) html(c *gin.Context, name string, data gin.H) {
	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: name, Data: data})
}

func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, h.homePath)
}

func (h *PageHandler) Login(c *gin.Context) {
	h.html(c, "login.html", gin.H{
		"Title":     "Вход",
		"ResetDone": c.Query("reset") == "success",
	})
}

func (h *PageHandler) ResetPassword(c *gin.Context) {
	h.html(c, "reset_password.html", gin.H{"Title": "Восстановление пароля"})
}

func (h *PageHandler) VerifyCode(c *gin.Context) {
	phone := utils.NormalizePhone(c.Query("phone"))
	if !utils.IsCanonicalPhone(phone) {
		c.Redirect(http.StatusFound, "/reset-password")
		return
	}
	h.html(c, "verify_code.html", gin.H{
		"Title":    "Подтверждение",
		"Phone":    utils.FormatPhone(phone),
		"RawPhone": phone,
	})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	accountID, ok := middleware.AuthAccountID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), accountID)
	if errors.Is(err, service.ErrAccountNotFound) {
		// token outlived its account
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.cookie.Secure, true)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, msgInternal)
		return
	}

	h.html(c, "dashboard.html", gin.H{
		"Title":       "Личный кабинет",
		"Phone":       utils.FormatMaskedPhone(account.Phone),
		"Balance":     utils.FormatCurrency(account.Balance),
		"TariffName":  account.Tariff.Name,
		"TariffPrice": utils.FormatCurrency(account.Tariff.Price),
		"NextPayment": utils.FormatDate(account.NextPaymentDate),
		"Active":      account.IsActive,
	})
}

// RegisterPageRoutes registers the HTML pages
func (h *PageHandler) RegisterPageRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/login", h.Login)
	rg.GET("/reset-password", h.ResetPassword)
	rg.GET("/verify-code", h.VerifyCode)
	rg.GET("/dashboard", h.Dashboard)
}
