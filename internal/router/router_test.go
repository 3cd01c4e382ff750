package router

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/handlers"
	"github.com/spacesedan/emotion-detector/internal/testutil"
)

func newTestRouter(t *testing.T, status int, body string) (*http.ServeMux, *testutil.FakeEmotionService) {
	t.Helper()
	fake := testutil.NewFakeEmotionService(t, status, body)
	return NewRouter(clients.NewEmotionClient(fake.Config()), nil), fake
}

func TestRoutes(t *testing.T) {
	mux, _ := newTestRouter(t, http.StatusOK, testutil.EmotionPayload(0.6, 0.1, 0.1, 0.1, 0.1))

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/emotionDetector?textToAnalyze=grr", http.StatusOK},
		{http.MethodGet, "/polarity?textToAnalyze=fine", http.StatusOK},
		{http.MethodGet, "/static/mywebscript.js", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPost, "/emotionDetector", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			testutil.AssertStatus(t, w, tc.status)
		})
	}
}

func TestEmotionDetectorRoute(t *testing.T) {
	mux, fake := newTestRouter(t, http.StatusOK, testutil.EmotionPayload(0.01, 0.01, 0.01, 0.95, 0.02))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emotionDetector?textToAnalyze=I+am+happy", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	var message string
	testutil.AssertJSON(t, w, &message)
	assert.Contains(t, message, "The dominant emotion is <b>joy</b>.")

	fake.Respond(http.StatusBadRequest, "{}")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emotionDetector?textToAnalyze=x", nil))
	assert.Equal(t, handlers.INVALID_TEXT_MESSAGE, w.Body.String())

	calls := fake.Calls()
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emotionDetector?textToAnalyze=", nil))
	assert.Equal(t, handlers.INVALID_TEXT_MESSAGE, w.Body.String())
	assert.Equal(t, calls, fake.Calls())
}

func TestHealthRoute_ReflectsMonitor(t *testing.T) {
	fake := testutil.NewFakeEmotionService(t, http.StatusOK, "{}")
	var healthy atomic.Bool
	mux := NewRouter(clients.NewEmotionClient(fake.Config()), &healthy)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
	assert.Equal(t, "UPSTREAM UNAVAILABLE", w.Body.String())
}
