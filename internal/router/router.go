package router

import (
	"net/http"
	"sync/atomic"

	"github.com/spacesedan/emotion-detector/internal/handlers"
	"github.com/spacesedan/emotion-detector/internal/middleware"
)

// NewRouter wires every route. upstreamHealthy may be nil when the health
// monitor is disabled.
func NewRouter(detector handlers.EmotionDetector, upstreamHealthy *atomic.Bool) *http.ServeMux {
	mux := http.NewServeMux()

	emotionHandler := handlers.NewEmotionHandler(detector)

	mux.HandleFunc("GET /health", handlers.Health(upstreamHealthy))

	mux.HandleFunc("GET /emotionDetector", middleware.WithLogging(emotionHandler.DetectEmotion))
	mux.HandleFunc("GET /polarity", middleware.WithLogging(handlers.Polarity))

	mux.Handle("GET /static/", handlers.Static())
	mux.HandleFunc("GET /{$}", middleware.WithLogging(handlers.Home))

	return mux
}
