package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclens/internal/domain"
	"doclens/internal/llm"
	"doclens/internal/port"
)

type stubExtractor struct {
	fields []domain.Field
	err    error
	calls  int
}

func (s *stubExtractor) Extract(ctx context.Context, text string, category domain.DocumentCategory) ([]domain.Field, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.fields, nil
}

func TestFallbackExtractor_FirstProviderSucceeds(t *testing.T) {
	first := &stubExtractor{fields: []domain.Field{{Key: "subject", Value: "hello"}}}
	second := &stubExtractor{}
	f := llm.NewFallbackExtractor([]port.LLMExtractor{first, second}, []string{"openai", "anthropic"})

	fields, err := f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.NoError(t, err)

	assert.Len(t, fields, 1)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestFallbackExtractor_RateLimitFallsThrough(t *testing.T) {
	first := &stubExtractor{err: llm.NewRateLimitError("openai", errors.New("429"), 30)}
	second := &stubExtractor{fields: []domain.Field{{Key: "subject", Value: "hello"}}}
	f := llm.NewFallbackExtractor([]port.LLMExtractor{first, second}, []string{"openai", "anthropic"})

	fields, err := f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.NoError(t, err)
	assert.Len(t, fields, 1)

	// The rate-limited provider's circuit stays open on the next call.
	_, err = f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 2, second.calls)
}

func TestFallbackExtractor_NonRateLimitErrorFallsThrough(t *testing.T) {
	first := &stubExtractor{err: errors.New("connection refused")}
	second := &stubExtractor{fields: []domain.Field{{Key: "subject", Value: "hello"}}}
	f := llm.NewFallbackExtractor([]port.LLMExtractor{first, second}, []string{"openai", "anthropic"})

	fields, err := f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.NoError(t, err)
	assert.Len(t, fields, 1)

	// No circuit for ordinary failures: the provider is retried next call.
	_, err = f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.NoError(t, err)
	assert.Equal(t, 2, first.calls)
}

func TestFallbackExtractor_AllRateLimited(t *testing.T) {
	first := &stubExtractor{err: llm.NewRateLimitError("openai", errors.New("429"), 30)}
	second := &stubExtractor{err: llm.NewRateLimitError("anthropic", errors.New("429"), 60)}
	f := llm.NewFallbackExtractor([]port.LLMExtractor{first, second}, []string{"openai", "anthropic"})

	_, err := f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "all", rlErr.Provider)
}

func TestFallbackExtractor_AllFail(t *testing.T) {
	first := &stubExtractor{err: errors.New("connection refused")}
	second := &stubExtractor{err: errors.New("bad gateway")}
	f := llm.NewFallbackExtractor([]port.LLMExtractor{first, second}, []string{"openai", "anthropic"})

	_, err := f.Extract(context.Background(), "text", domain.CategoryLetter)
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
	assert.Contains(t, err.Error(), "all providers failed")
}
