package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mgalvezc/delivery-core/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after transient failure", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary error")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		wantErr := errors.New("still broken")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, cfg.MaxAttempts, calls)
	})

	t.Run("permanent error short-circuits", func(t *testing.T) {
		notFound := errors.New("not found")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return fmt.Errorf("lookup: %w", notFound)
		}, notFound)
		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, 1, calls)
	})
}

func TestFieldErrors(t *testing.T) {
	type payload struct {
		Name  string `json:"name" validate:"required"`
		Stars int    `json:"stars" validate:"gte=1,lte=5"`
	}

	v := utils.NewValidator()
	err := v.Struct(payload{Stars: 9})
	fields := utils.FieldErrors(err)

	assert.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "is required", fields[0].Message)
	assert.Equal(t, "stars", fields[1].Field)
	assert.Equal(t, "must be at most 5", fields[1].Message)

	assert.Nil(t, utils.FieldErrors(errors.New("plain error")))
	assert.Nil(t, utils.FieldErrors(nil))
}
