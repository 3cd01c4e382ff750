package handlers

import (
	"net/http"

	"github.com/spacesedan/emotion-detector/internal/middleware"
	"github.com/spacesedan/emotion-detector/internal/models"
	"github.com/spacesedan/emotion-detector/internal/sentiment"
)

// Polarity handles GET /polarity?textToAnalyze=...
// Scored locally with VADER; the emotion service is not called.
func Polarity(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get(TEXT_PARAM)
	if text == "" {
		middleware.TextResponse(w, http.StatusOK, INVALID_TEXT_MESSAGE)
		return
	}

	score, label := sentiment.AnalyzePolarity(text)
	middleware.JSONResponse(w, http.StatusOK, models.PolarityResponse{
		Score: score,
		Label: label,
	})
}
