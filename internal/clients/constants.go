package clients

const (
	USER_AGENT      = "emotion-detector-client/1.0 (+https://github.com/spacesedan/emotion-detector)"
	MODEL_ID_HEADER = "grpc-metadata-mm-model-id"

	// Upstream bodies are small JSON documents; anything larger is not ours.
	MAX_RESPONSE_BYTES = 1 << 20
)
