package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// 每個頁面模板與layout合併解析
var pageNames = []string{
	"landing", "login", "register", "dashboard", "products", "product_add",
	"cart", "checkout", "payment", "payment_success", "profile",
}

// Renderer 以embed的html/template渲染頁面
type Renderer struct {
	templates map[string]*template.Template
	logger    *zerolog.Logger
}

func NewRenderer(logger *zerolog.Logger) (*Renderer, error) {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates, logger: logger}, nil
}

// HTML 渲染頁面, 模板錯誤回500
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data map[string]any) {
	tmpl, ok := r.templates[name]
	if !ok {
		r.logger.Error().Str("template", name).Msg("unknown template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

// JSON 回傳JSON body
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
