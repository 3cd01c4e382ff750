package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/emotion-detector/internal/models"
	"github.com/spacesedan/emotion-detector/internal/sentiment"
	"github.com/spacesedan/emotion-detector/internal/testutil"
)

func TestHome(t *testing.T) {
	w := httptest.NewRecorder()
	Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `id="textToAnalyze"`)
	assert.Contains(t, w.Body.String(), "/static/mywebscript.js")
}

func TestStatic(t *testing.T) {
	w := httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/mywebscript.js", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "/emotionDetector?textToAnalyze=")
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(nil)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "OK", w.Body.String())

	var healthy atomic.Bool
	w = httptest.NewRecorder()
	Health(&healthy)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

	healthy.Store(true)
	w = httptest.NewRecorder()
	Health(&healthy)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestPolarity(t *testing.T) {
	w := httptest.NewRecorder()
	Polarity(w, httptest.NewRequest(http.MethodGet, "/polarity?textToAnalyze=I+love+this+wonderful+day", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.PolarityResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, sentiment.LabelPositive, resp.Label)
	assert.Greater(t, resp.Score, 0.0)
}

func TestPolarity_EmptyText(t *testing.T) {
	w := httptest.NewRecorder()
	Polarity(w, httptest.NewRequest(http.MethodGet, "/polarity", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, INVALID_TEXT_MESSAGE, w.Body.String())
}
