package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type PolarityResponse struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}
