package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/middleware"
	"github.com/spacesedan/emotion-detector/internal/models"
)

const (
	TEXT_PARAM           = "textToAnalyze"
	INVALID_TEXT_MESSAGE = "Invalid text! Please try again!"
)

type EmotionDetector interface {
	Detect(ctx context.Context, text string) (*models.EmotionScores, error)
}

type EmotionHandler struct {
	detector EmotionDetector
}

func NewEmotionHandler(detector EmotionDetector) *EmotionHandler {
	return &EmotionHandler{detector: detector}
}

// DetectEmotion handles GET /emotionDetector?textToAnalyze=...
// Empty input and text rejected upstream both get INVALID_TEXT_MESSAGE.
func (h *EmotionHandler) DetectEmotion(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get(TEXT_PARAM)
	if text == "" {
		middleware.TextResponse(w, http.StatusOK, INVALID_TEXT_MESSAGE)
		return
	}

	scores, err := h.detector.Detect(r.Context(), text)
	if errors.Is(err, clients.ErrInvalidText) {
		middleware.TextResponse(w, http.StatusOK, INVALID_TEXT_MESSAGE)
		return
	}
	if err != nil {
		slog.Error("emotion detection failed", slog.String("error", err.Error()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Emotion detection failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, FormatEmotionResponse(*scores))
}

// FormatEmotionResponse renders the summary sentence shown to the user.
func FormatEmotionResponse(s models.EmotionScores) string {
	return fmt.Sprintf("For the given statement, the system response is "+
		"'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s, and 'sadness': %s. "+
		"The dominant emotion is <b>%s</b>.",
		formatScore(s.Anger), formatScore(s.Disgust), formatScore(s.Fear),
		formatScore(s.Joy), formatScore(s.Sadness), s.DominantEmotion)
}

// formatScore prints the shortest decimal that parses back to v, keeping a
// trailing ".0" on whole numbers (1.0, not 1).
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}
