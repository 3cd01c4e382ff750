package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/models"
)

var (
	// ErrInvalidText means the upstream service rejected the text with a 4xx.
	ErrInvalidText = errors.New("emotion service rejected the text")
	// ErrMalformedResponse means a 2xx payload did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed emotion response")
	// ErrUpstreamUnavailable covers transport failures and 5xx statuses.
	ErrUpstreamUnavailable = errors.New("emotion service unavailable")
)

type EmotionClient struct {
	Client   *http.Client
	endpoint string
	modelID  string
}

func NewEmotionClient(cfg config.ServerConfig) *EmotionClient {
	slog.Info("[EmotionClient] Initializing Client",
		slog.String("endpoint", cfg.EmotionEndpoint),
		slog.String("model", cfg.ModelID),
		slog.Duration("timeout", cfg.Timeout),
		slog.String("env", cfg.Env))

	return &EmotionClient{
		Client: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: cfg.EmotionEndpoint,
		modelID:  cfg.ModelID,
	}
}

// Detect sends text to the emotion service and returns its normalized scores.
// The text is sent as is; callers reject empty input before calling.
// A 4xx from upstream yields a nil result and ErrInvalidText. No retries.
func (e *EmotionClient) Detect(ctx context.Context, text string) (*models.EmotionScores, error) {
	start := time.Now()

	status, body, err := e.postJSON(ctx, models.EmotionPredictRequest{
		RawDocument: models.RawDocument{Text: text},
	})
	if err != nil {
		slog.Error("[EmotionClient] Emotion request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	switch {
	case status >= 400 && status < 500:
		slog.Info("[EmotionClient] Text rejected by emotion service",
			slog.Int("status", status),
			slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: status code %d", ErrInvalidText, status)
	case status >= 500:
		slog.Error("[EmotionClient] Emotion service error",
			slog.Int("status", status),
			getPreview(body))
		return nil, fmt.Errorf("%w: status code %d", ErrUpstreamUnavailable, status)
	case status < 200 || status >= 300:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrMalformedResponse, status)
	}

	scores, err := NormalizeEmotionResponse(body)
	if err != nil {
		slog.Error("[EmotionClient] Failed to normalize response",
			slog.String("error", err.Error()),
			getPreview(body),
			slog.Int("raw_response_length", len(body)))
		return nil, err
	}

	slog.Info("[EmotionClient] Emotion request successful",
		slog.String("dominant_emotion", scores.DominantEmotion),
		slog.Duration("elapsed", time.Since(start)))
	return scores, nil
}

// Ping posts an empty document. Any status below 500 means the service is up;
// it answers empty text with a 400.
func (e *EmotionClient) Ping(ctx context.Context) error {
	status, _, err := e.postJSON(ctx, models.EmotionPredictRequest{})
	if err != nil {
		return err
	}
	if status >= 500 {
		return fmt.Errorf("%w: status code %d", ErrUpstreamUnavailable, status)
	}
	return nil
}

// NormalizeEmotionResponse decodes an EmotionPredict payload and returns the
// scores of the first prediction. Missing keys are errors, never defaults.
func NormalizeEmotionResponse(body []byte) (*models.EmotionScores, error) {
	var resp models.EmotionPredictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(resp.EmotionPredictions) == 0 {
		return nil, fmt.Errorf("%w: no emotionPredictions", ErrMalformedResponse)
	}

	mention := resp.EmotionPredictions[0].Emotion
	if mention == nil {
		return nil, fmt.Errorf("%w: prediction has no emotion", ErrMalformedResponse)
	}

	fields := []struct {
		label string
		value *float64
	}{
		{models.EmotionAnger, mention.Anger},
		{models.EmotionDisgust, mention.Disgust},
		{models.EmotionFear, mention.Fear},
		{models.EmotionJoy, mention.Joy},
		{models.EmotionSadness, mention.Sadness},
	}
	for _, f := range fields {
		if f.value == nil {
			return nil, fmt.Errorf("%w: missing %q score", ErrMalformedResponse, f.label)
		}
	}

	scores := &models.EmotionScores{
		Anger:   *mention.Anger,
		Disgust: *mention.Disgust,
		Fear:    *mention.Fear,
		Joy:     *mention.Joy,
		Sadness: *mention.Sadness,
	}
	scores.DominantEmotion = scores.Dominant()
	return scores, nil
}

func (e *EmotionClient) postJSON(ctx context.Context, input interface{}) (int, []byte, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set(MODEL_ID_HEADER, e.modelID)

	resp, err := e.Client.Do(req)
	if err != nil {
		slog.Warn("[EmotionClient] Request failed",
			slog.String("endpoint", e.endpoint),
			slog.String("error", errMsg(err, resp)))
		return 0, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MAX_RESPONSE_BYTES))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstreamUnavailable, err)
	}

	return resp.StatusCode, respBody, nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
