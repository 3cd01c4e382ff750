package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/models"
)

// FakeEmotionService is an httptest server standing in for the upstream
// emotion API. It records every request it receives.
type FakeEmotionService struct {
	Server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []RecordedRequest
}

type RecordedRequest struct {
	ModelID string
	Body    models.EmotionPredictRequest
}

// NewFakeEmotionService starts a fake that answers with status and body.
// It is closed when the test ends.
func NewFakeEmotionService(t *testing.T, status int, body string) *FakeEmotionService {
	t.Helper()

	f := &FakeEmotionService{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeEmotionService) serve(w http.ResponseWriter, r *http.Request) {
	var body models.EmotionPredictRequest
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		ModelID: r.Header.Get("grpc-metadata-mm-model-id"),
		Body:    body,
	})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(respBody))
}

// Respond changes the canned answer for later requests.
func (f *FakeEmotionService) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

func (f *FakeEmotionService) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *FakeEmotionService) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// Config returns a server config pointing at the fake.
func (f *FakeEmotionService) Config() config.ServerConfig {
	return GetTestConfig(f.Server.URL)
}

// GetTestConfig returns a standard test configuration for endpoint.
func GetTestConfig(endpoint string) config.ServerConfig {
	return config.ServerConfig{
		Env:             "test",
		Port:            5000,
		EmotionEndpoint: endpoint,
		ModelID:         config.DEFAULT_MODEL_ID,
		Timeout:         2 * time.Second,
	}
}

// EmotionPayload builds a success body in the upstream's shape.
func EmotionPayload(anger, disgust, fear, joy, sadness float64) string {
	return fmt.Sprintf(`{"emotionPredictions":[{"emotion":{"anger":%v,"disgust":%v,"fear":%v,"joy":%v,"sadness":%v},"target":"","emotionMentions":[]}],"producerId":{"name":"Ensemble Aggregated Emotion Workflow","version":"0.0.1"}}`,
		anger, disgust, fear, joy, sadness)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided value
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
