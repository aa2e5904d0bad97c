package llm_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"doclens/internal/llm"
)

func TestRateLimitError_Unwrap(t *testing.T) {
	base := errors.New("429 too many requests")
	err := llm.NewRateLimitError("openai", base, 30)

	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.Equal(t, "openai", err.Provider)
	assert.True(t, errors.Is(err, base))

	var rlErr *llm.RateLimitError
	assert.True(t, errors.As(err, &rlErr))
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := llm.NewRateLimitError("google", errors.New("boom"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, llm.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
}
