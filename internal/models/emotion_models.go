package models

// Emotion labels in the fixed order used for dominant emotion tie-breaks.
const (
	EmotionAnger   = "anger"
	EmotionDisgust = "disgust"
	EmotionFear    = "fear"
	EmotionJoy     = "joy"
	EmotionSadness = "sadness"
)

var EmotionLabels = [...]string{
	EmotionAnger,
	EmotionDisgust,
	EmotionFear,
	EmotionJoy,
	EmotionSadness,
}

type (
	EmotionPredictRequest struct {
		RawDocument RawDocument `json:"raw_document"`
	}
	RawDocument struct {
		Text string `json:"text"`
	}
)

// Only the fields we read are modelled; the upstream payload also carries
// target mentions and producer metadata.
type (
	EmotionPredictResponse struct {
		EmotionPredictions []EmotionPrediction `json:"emotionPredictions"`
	}
	EmotionPrediction struct {
		Emotion *EmotionMention `json:"emotion"`
	}
	// Pointers let a missing label be told apart from a 0 score.
	EmotionMention struct {
		Anger   *float64 `json:"anger"`
		Disgust *float64 `json:"disgust"`
		Fear    *float64 `json:"fear"`
		Joy     *float64 `json:"joy"`
		Sadness *float64 `json:"sadness"`
	}
)

// EmotionScores is the normalized result for one piece of text.
type EmotionScores struct {
	Anger           float64 `json:"anger"`
	Disgust         float64 `json:"disgust"`
	Fear            float64 `json:"fear"`
	Joy             float64 `json:"joy"`
	Sadness         float64 `json:"sadness"`
	DominantEmotion string  `json:"dominant_emotion"`
}

// Score returns the score for label, and false for an unknown label.
func (s EmotionScores) Score(label string) (float64, bool) {
	switch label {
	case EmotionAnger:
		return s.Anger, true
	case EmotionDisgust:
		return s.Disgust, true
	case EmotionFear:
		return s.Fear, true
	case EmotionJoy:
		return s.Joy, true
	case EmotionSadness:
		return s.Sadness, true
	default:
		return 0, false
	}
}

// Dominant walks EmotionLabels in order and keeps the first label holding
// the maximum score, so ties go to the earlier label.
func (s EmotionScores) Dominant() string {
	dominant := EmotionLabels[0]
	best, _ := s.Score(dominant)
	for _, label := range EmotionLabels[1:] {
		if v, _ := s.Score(label); v > best {
			dominant, best = label, v
		}
	}
	return dominant
}
