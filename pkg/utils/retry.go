package utils

import (
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Retry runs fn with exponential backoff. Errors matching any of the permanent
// sentinels are returned immediately: retrying a domain failure cannot help.
func Retry(cfg RetryConfig, fn func() error, permanent ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		for _, p := range permanent {
			if errors.Is(err, p) {
				return err
			}
		}

		if attempt == cfg.MaxAttempts {
			return err
		}

		time.Sleep(delay)

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}
