package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/riverfjs/rtltext-go"
)

// envConfig holds CLI defaults loaded from the environment.
type envConfig struct {
	DefaultDir rtltext.Direction // RTLTEXT_DEFAULT_DIR=ltr|rtl
	Threshold  float64           // RTLTEXT_THRESHOLD=0.3
}

// loadEnv reads .env (if present) then environment variables.
func loadEnv() (*envConfig, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	cfg := &envConfig{
		DefaultDir: rtltext.LTR,
		Threshold:  rtltext.DefaultConfig().Threshold,
	}

	if raw := strings.TrimSpace(os.Getenv("RTLTEXT_DEFAULT_DIR")); raw != "" {
		dir, err := rtltext.ParseDirection(raw)
		if err != nil {
			return nil, fmt.Errorf("RTLTEXT_DEFAULT_DIR: %w", err)
		}
		cfg.DefaultDir = dir
	}

	if raw := strings.TrimSpace(os.Getenv("RTLTEXT_THRESHOLD")); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("RTLTEXT_THRESHOLD: %w", err)
		}
		cfg.Threshold = threshold
	}

	return cfg, nil
}
