package web

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates
var templates *template.Template

func InitTemplates() error {
	var err error
	templates, err = template.ParseFS(templateFS, "templates/*.html")
	return err
}

func (s *Server) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	data["Banner"] = s.opts.BannerText
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", map[string]interface{}{
		"Modes":    modeOptions(),
		"Donation": s.opts.DonationAddress,
	})
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	s.render(w, "curve.html", map[string]interface{}{
		"Facts":  curveFacts,
		"Steps":  strategySteps,
		"Params": poolParams,
	})
}

func (s *Server) handleComingSoon(w http.ResponseWriter, r *http.Request) {
	strategy, ok := strategies[r.PathValue("name")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	background := strategy.Gradient
	if background == "" {
		background = strategy.Color
	}
	s.render(w, "coming_soon.html", map[string]interface{}{
		"Strategy":   strategy,
		"Accent":     template.CSS(strategy.Color),
		"Background": template.CSS(background),
	})
}
