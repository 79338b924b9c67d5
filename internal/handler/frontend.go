package handler

import (
	"embed"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"visionserver/internal/config"
	"visionserver/internal/logger"
	"visionserver/internal/service/telemetry"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	ServerName  string
	Environment string
	Stats       telemetry.StatsSnapshot
	ServerLogs  []string
}

// FrontendHandler serves the single-page frontend from cfg.StaticDirectory. Existing files are
// served as-is, "/" and "/logs.html" fall back to generated pages, and any other path falls back
// to index.html or redirects to "/".
func FrontendHandler(svc *telemetry.Service, cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		urlPath := path.Clean("/" + r.URL.Path)
		indexPath := filepath.Join(cfg.StaticDirectory, "index.html")

		if urlPath != "/" {
			filePath := filepath.Join(cfg.StaticDirectory, filepath.FromSlash(urlPath))
			if isFile(filePath) {
				http.ServeFile(w, r, filePath)
				return
			}
		}

		switch urlPath {
		case "/":
			if isFile(indexPath) {
				http.ServeFile(w, r, indexPath)
				return
			}
			logger.Warning("index.html not found in %s, serving generated dashboard", cfg.StaticDirectory)
			renderPage(w, "dashboard.html", pageData{
				ServerName:  cfg.ServerName,
				Environment: cfg.Environment,
				Stats:       svc.Stats(),
			}, logger)
		case "/logs.html":
			renderPage(w, "logs.html", pageData{
				ServerName: cfg.ServerName,
				ServerLogs: svc.Summary(),
			}, logger)
		default:
			if isFile(indexPath) {
				http.ServeFile(w, r, indexPath)
				return
			}
			http.Redirect(w, r, "/", http.StatusFound)
		}
	}
}

func renderPage(w http.ResponseWriter, name string, data pageData, logger *logger.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("Error rendering %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func isFile(filePath string) bool {
	info, err := os.Stat(filePath)
	return err == nil && !info.IsDir()
}

// APINotFoundHandler answers unmatched /api/ paths with a JSON 404.
func APINotFoundHandler(logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorWithPath("API route not found", r.URL.Path), logger)
	}
}
