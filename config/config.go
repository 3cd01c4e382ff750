package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_PORT             = 5000
	DEFAULT_EMOTION_ENDPOINT = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DEFAULT_MODEL_ID         = "emotion_aggregated-workflow_lang_en_stock"

	productionTimeout  = 10 * time.Second
	developmentTimeout = 60 * time.Second
)

// ServerConfig is everything the server needs at startup. It is built once in
// main and handed to the components that need it.
type ServerConfig struct {
	Env             string
	Port            int
	EmotionEndpoint string
	ModelID         string
	Timeout         time.Duration
	HealthInterval  time.Duration
}

// Addr is the listen address for http.Server.
func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load parses flags and falls back to environment variables, then defaults.
// Flags take precedence over the environment.
func Load(args []string) (ServerConfig, error) {
	var cfg ServerConfig
	var timeout, healthInterval string

	fs := flag.NewFlagSet("emotion-detector", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.EmotionEndpoint, "endpoint", "", "Emotion prediction endpoint URL")
	fs.StringVar(&cfg.ModelID, "model", "", "Emotion model id sent upstream")
	fs.StringVar(&timeout, "timeout", "", "Outbound request timeout (e.g. 10s)")
	fs.StringVar(&healthInterval, "health-interval", "", "Upstream health probe interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}

	cfg.Env = os.Getenv("APP_ENV")
	if cfg.Env == "" {
		cfg.Env = "dev"
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return ServerConfig{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DEFAULT_PORT
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return ServerConfig{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.EmotionEndpoint == "" {
		cfg.EmotionEndpoint = os.Getenv("EMOTION_ENDPOINT")
	}
	if cfg.EmotionEndpoint == "" {
		cfg.EmotionEndpoint = DEFAULT_EMOTION_ENDPOINT
	}
	u, err := url.Parse(cfg.EmotionEndpoint)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ServerConfig{}, fmt.Errorf("invalid emotion endpoint %q", cfg.EmotionEndpoint)
	}

	if cfg.ModelID == "" {
		cfg.ModelID = os.Getenv("EMOTION_MODEL_ID")
	}
	if cfg.ModelID == "" {
		cfg.ModelID = DEFAULT_MODEL_ID
	}

	if timeout == "" {
		timeout = os.Getenv("EMOTION_TIMEOUT")
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return ServerConfig{}, fmt.Errorf("invalid timeout %q", timeout)
		}
		cfg.Timeout = d
	} else if cfg.Env == "production" {
		cfg.Timeout = productionTimeout
	} else {
		cfg.Timeout = developmentTimeout
	}

	if healthInterval == "" {
		healthInterval = os.Getenv("HEALTHCHECK_INTERVAL")
	}
	if healthInterval != "" {
		d, err := time.ParseDuration(healthInterval)
		if err != nil || d < 0 {
			return ServerConfig{}, fmt.Errorf("invalid health check interval %q", healthInterval)
		}
		cfg.HealthInterval = d
	}

	return cfg, nil
}
