package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/spacesedan/emotion-detector/internal/middleware"
)

//go:embed templates static
var assets embed.FS

var indexTemplate = template.Must(template.ParseFS(assets, "templates/index.html"))

type pageData struct {
	TextParam string
}

// Home renders the landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{TextParam: TEXT_PARAM}); err != nil {
		slog.Error("failed to render index", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Static serves the embedded static directory under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Health reports OK unless the upstream monitor has marked the emotion
// service down. A nil flag means monitoring is off.
func Health(upstreamHealthy *atomic.Bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if upstreamHealthy != nil && !upstreamHealthy.Load() {
			middleware.TextResponse(w, http.StatusServiceUnavailable, "UPSTREAM UNAVAILABLE")
			return
		}
		middleware.TextResponse(w, http.StatusOK, "OK")
	}
}
